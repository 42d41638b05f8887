//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"football-field-booking/internal/domain/user"
	"football-field-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("発行したトークンを検証できる", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour, "")
		token, err := svc.GenerateToken(userID, user.RoleOwner)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "owner", claims.Role)
	})

	t.Run("期限切れ", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute, "")
		token, err := svc.GenerateToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("別の鍵で署名されたトークン", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour, "").GenerateToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, "").ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("発行者が違う", func(t *testing.T) {
		token, err := jwt.NewService("secret", time.Hour, "someone-else").GenerateToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, "accounts").ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("HS256以外のアルゴリズムは拒否する", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: userID,
			Role:   "user",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, "").ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("user_id がない", func(t *testing.T) {
		claims := jwt.Claims{
			Role: "user",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, "").ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("壊れた文字列", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour, "").ValidateToken("not.a.token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
