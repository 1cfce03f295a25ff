package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/chefacademy/backend/internal/models"
)

type contextKey string

const learnerIDKey contextKey = "learnerID"

// AuthMiddleware validates the JWT access token and puts the learner ID into the request context
func AuthMiddleware(tokenValidator *TokenValidator) func(http.Handler) http.Handler {
	return RoleMiddleware(tokenValidator, models.RoleLearner)
}

// RoleMiddleware validates the JWT access token and checks that the caller's role is >= requiredRole
func RoleMiddleware(tokenValidator *TokenValidator, requiredRole models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			learnerID, role, err := tokenValidator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if role < requiredRole {
				writeError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), learnerIDKey, learnerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIKeyMiddleware validates the X-API-Key header used for service-to-service calls
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get("X-API-Key")
			if apiKey == "" || providedKey == "" || subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid or missing API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetLearnerID retrieves the authenticated learner ID from context
func GetLearnerID(ctx context.Context) (string, bool) {
	learnerID, ok := ctx.Value(learnerIDKey).(string)
	return learnerID, ok && learnerID != ""
}

// extractToken reads the bearer token from the Authorization header, falling back to the access_token cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
