package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mwkit/mwkit/pkg/common"
	"go.uber.org/zap"
)

// subjectKey is the context key for the authenticated subject.
type subjectKey struct{}

// Auth returns a middleware that validates an Authorization: Bearer <JWT>
// header against the given HMAC secret. On success the token's subject
// claim is attached to the request context for downstream consumers; on
// failure the request is answered with 401 Unauthorized and the inner
// chain is never invoked.
func Auth(secret []byte, logger *zap.Logger) Middleware {
	return common.From(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			// No "Bearer " prefix found
			http.Error(w, "Invalid Authorization Header", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil || !token.Valid {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
			)
			http.Error(w, "Invalid Token", http.StatusUnauthorized)
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			http.Error(w, "Invalid Token", http.StatusUnauthorized)
			return
		}

		logger.Debug("Authentication successful",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)

		ctx := context.WithValue(r.Context(), subjectKey{}, subject)
		next(w, r.WithContext(ctx))
	})
}

// GetSubject extracts the authenticated subject from the request context.
// Reports false if the request did not pass through Auth.
func GetSubject(r *http.Request) (string, bool) {
	subject, ok := r.Context().Value(subjectKey{}).(string)
	return subject, ok
}
