package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/logger"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
	"github.com/sbilibin2017/fitness-tracker/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// UserAuthenticator resolves a verified user ID to a stored user.
type UserAuthenticator interface {
	Authenticate(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

type userKey struct{}

// AuthMiddleware returns a middleware that verifies the bearer token, loads the
// user it names and stores that user in the request context.
func AuthMiddleware(tokener Tokener, authenticator UserAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeMessage(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			user, err := authenticator.Authenticate(ctx, userID)
			if errors.Is(err, services.ErrUserNotFound) {
				log.Infow("authorization failed", "userID", userID, "err", err)
				writeMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
				return
			}
			if err != nil {
				log.Errorw("failed to load user", "userID", userID, "err", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.UserDB, bool) {
	user, ok := ctx.Value(userKey{}).(*models.UserDB)
	return user, ok && user != nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
