package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/jwt"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// AccessVerifier extracts and verifies access tokens.
type AccessVerifier interface {
	AccessTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	VerifyAccessToken(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserLoader resolves the token subject.
type UserLoader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type userKey struct{}

// AuthMiddleware rejects requests without a valid access token and attaches
// the sanitized current user to the request context.
func AuthMiddleware(tokens AccessVerifier, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokens.AccessTokenFromRequest(ctx, r)
			if err != nil {
				if !errors.Is(err, jwt.ErrTokenMissing) {
					log.Debugw("malformed authorization header", "err", err)
				}
				writeError(w, apierror.Unauthorized("Unauthorized request"))
				return
			}

			claims, err := tokens.VerifyAccessToken(ctx, tokenString)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeError(w, apierror.Unauthorized("Invalid access token"))
				return
			}

			id, err := claims.ObjectID()
			if err != nil {
				writeError(w, apierror.Unauthorized("Invalid access token"))
				return
			}

			user, err := users.FindByID(ctx, id)
			if err != nil {
				log.Infow("token subject not found", "user_id", claims.UserID, "err", err)
				writeError(w, apierror.Unauthorized("Invalid access token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user.Sanitized())))
		})
	}
}

// WithUser stores user in ctx.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, or nil outside the gate.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey{}).(*models.User)
	return user
}
