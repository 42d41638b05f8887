//go:build unit

package api_test

import (
	"net/http"

	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// fakeAuth stands in for RequireAuth: any Authorization header authenticates as actor.
func fakeAuth(actor *user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *actor)
		c.Next()
	}
}

// fakeOptionalAuth stands in for OptionalAuth.
func fakeOptionalAuth(actor *user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, *actor)
		}
		c.Next()
	}
}

func ptr[T any](v T) *T { return &v }
