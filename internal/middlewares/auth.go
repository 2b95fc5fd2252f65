package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/job-portal/internal/jwt"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the acting user referenced by token claims.
type UserGetter interface {
	GetAuthByID(ctx context.Context, userID uuid.UUID) (*models.AuthUser, error)
}

// MessageResponse is the JSON error body used by auth and role gates.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(MessageResponse{Message: message})
}

// AuthMiddleware returns a middleware that verifies the bearer token and
// attaches the acting user (without credentials) to the request context.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeMessage(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			user, err := users.GetAuthByID(ctx, claims.UserID)
			if err != nil || user == nil {
				logger.Log.Errorw("authorization failed", "userID", claims.UserID, "err", err)
				writeMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// RequireRole returns a role gate. It answers 401 when no authenticated
// user is attached, so a gate can never observe a half-authenticated
// request, and 403 on role mismatch.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	message := "Not authorized, employer only"
	if role == models.RoleFreelancer {
		message = "Not authorized, freelancer only"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r.Context())
			if user == nil {
				writeMessage(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}
			if user.Role != role {
				writeMessage(w, http.StatusForbidden, message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// userContextKey is an unexported type for keys in context
type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.AuthUser {
	user, _ := ctx.Value(userKey).(*models.AuthUser)
	return user
}
