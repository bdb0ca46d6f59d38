package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/logger"
	"rentfit-backend/internal/security"
)

// AuthMiddleware guards routes behind bearer-token validation and a role
// check. Every failure mode collapses into the same generic 401 so callers
// cannot tell a bad signature from an expired token or a role mismatch.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireRole wraps a handler so only tokens carrying the expected role pass.
func (m *AuthMiddleware) RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearer(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			claims, err := m.tokens.Validate(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}
			if err := claims.RequireRole(role); err != nil {
				writeError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			identity := Identity{
				SubjectID: claims.SubjectID,
				Username:  claims.Username,
				Role:      claims.Role,
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func extractBearer(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", security.ErrInvalidToken
	}
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", security.ErrInvalidToken
	}
	return strings.TrimSpace(header[7:]), nil
}

// CORSMiddleware applies the configured credentialed origin allow-list and
// short-circuits preflight requests.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
				w.Header().Set("Vary", "Origin")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogMiddleware tags each request with an id and logs it on the way out.
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.WithRequest(requestID, r.Method, r.URL.Path).Debug("Request handled", "duration", time.Since(start))
	})
}
