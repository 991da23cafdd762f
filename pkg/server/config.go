// Package server is the thin serving host for mwkit: it mounts composed
// handlers (typically dispatch.Dispatcher values) onto paths, applies a
// server-wide middleware chain, and manages the HTTP listener with
// graceful shutdown. The composition engine itself knows nothing about
// paths or connections; that is this package's job.
package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ListenConfig holds the HTTP listener settings.
type ListenConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  int    `yaml:"read_timeout"`  // seconds
	WriteTimeout int    `yaml:"write_timeout"` // seconds
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// Config is the top-level configuration for the server. Zero values
// disable the corresponding feature.
type Config struct {
	Listen          ListenConfig `yaml:"listen"`
	MaxBodySize     int64        `yaml:"max_body_size"`   // bytes, 0 = unlimited
	RateLimitRPS    int          `yaml:"ratelimit_rps"`   // requests/second, 0 = off
	RequestTimeout  int          `yaml:"request_timeout"` // seconds, 0 = off
	Auth            AuthConfig   `yaml:"auth"`
	EnableMetrics   bool         `yaml:"metrics"`
	EnableRequestID bool         `yaml:"request_id"`
}

// DefaultConfig returns a configuration listening on :8080 with every
// optional middleware disabled.
func DefaultConfig() *Config {
	return &Config{
		Listen: ListenConfig{Addr: ":8080"},
	}
}

// Load reads a YAML config file and parses it into a Config.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Listen.Addr == "" {
		cfg.Listen.Addr = ":8080"
	}

	return cfg, nil
}

// readTimeout returns the listener read timeout as a duration.
func (c *Config) readTimeout() time.Duration {
	return time.Duration(c.Listen.ReadTimeout) * time.Second
}

// writeTimeout returns the listener write timeout as a duration.
func (c *Config) writeTimeout() time.Duration {
	return time.Duration(c.Listen.WriteTimeout) * time.Second
}
