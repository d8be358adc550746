package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

func TestTokenManager(t *testing.T) {
	user := &domain.User{ID: 42, Role: domain.RoleCustomer}

	t.Run("Should round-trip user identity and role", func(t *testing.T) {
		tm := auth.NewTokenManager("secret", 15)
		token, expiresAt, err := tm.GenerateToken(user)
		require.NoError(t, err)
		assert.True(t, expiresAt.After(time.Now()))

		claims, err := tm.ParseToken(token)
		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, domain.RoleCustomer, claims.Role)
	})

	t.Run("Should reject token signed with another secret", func(t *testing.T) {
		tm := auth.NewTokenManager("secret", 15)
		other := auth.NewTokenManager("other-secret", 15)

		token, _, err := other.GenerateToken(user)
		require.NoError(t, err)
		_, err = tm.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("Should reject expired token", func(t *testing.T) {
		tm := auth.NewTokenManager("secret", 15)
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		token, err := expired.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = tm.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("Should reject token signed with another algorithm", func(t *testing.T) {
		tm := auth.NewTokenManager("secret", 15)
		none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "42"})
		token, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tm.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		tm := auth.NewTokenManager("secret", 15)
		_, err := tm.ParseToken("not-a-token")
		assert.Error(t, err)
	})
}
