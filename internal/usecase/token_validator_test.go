//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/pkg/jwt"
	"football-field-booking/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, "")
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("ロールを解釈する", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		id, role, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("未知のロールは拒否する", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: userID,
			Role:   "superuser",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("不正なトークン", func(t *testing.T) {
		_, _, err := validator.ValidateToken("garbage")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
