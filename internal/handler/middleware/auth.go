package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/handler/httperr"
	"football-field-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errNoActor      = errors.New("no authenticated actor in context")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Authentication credentials were not provided", nil)
			return
		}

		actor, err := m.authenticate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through as guests. A token that fails validation is
// treated the same as no token.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		actor, err := m.authenticate(token)
		if err != nil {
			slog.Debug("Ignoring invalid token on public route", "error", err.Error())
			c.Next()
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(token string) (user.Actor, error) {
	userID, role, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		return user.Actor{}, err
	}
	return user.Actor{ID: userID, Role: role}, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetActor returns the authenticated actor, or a guest when the request carried no valid token.
func GetActor(c *gin.Context) user.Actor {
	if v, exists := c.Get(ctxActorKey); exists {
		if actor, ok := v.(user.Actor); ok {
			return actor
		}
	}
	return user.Guest()
}

// MustActor is GetActor for routes behind RequireAuth.
func MustActor(c *gin.Context) (user.Actor, error) {
	actor := GetActor(c)
	if actor.IsGuest() {
		return actor, errNoActor
	}
	return actor, nil
}

// SetActor stores actor the way RequireAuth does. Handler tests use it in place of a token.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
}
