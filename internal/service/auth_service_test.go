package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
	"github.com/Fakedev-cmd/botforge-services.it/internal/config"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            4,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Should register new user as active customer", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := service.NewAuthService(testAuthConfig(), users)

		user, err := svc.Register(ctx, service.RegisterInput{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "correct-horse",
			FirstName: "Alice",
			LastName:  "Smith",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, user.Role)
		assert.Equal(t, domain.UserStatusActive, user.Status)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "correct-horse", user.PasswordHash)
	})

	t.Run("Should reject duplicate email", func(t *testing.T) {
		users := newFakeUserRepo()
		users.add(&domain.User{Username: "alice", Email: "alice@example.com"})
		svc := service.NewAuthService(testAuthConfig(), users)

		_, err := svc.Register(ctx, service.RegisterInput{
			Username: "alice2",
			Email:    "alice@example.com",
			Password: "whatever123",
		})
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, 400, domainErr.HTTPStatus)
		assert.Equal(t, "User already exists with this email", domainErr.Message)
	})

	t.Run("Should map unique violation to duplicate username error", func(t *testing.T) {
		users := newFakeUserRepo()
		users.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		svc := service.NewAuthService(testAuthConfig(), users)

		_, err := svc.Register(ctx, service.RegisterInput{
			Username: "alice",
			Email:    "new@example.com",
			Password: "whatever123",
		})
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, 400, domainErr.HTTPStatus)
		assert.Equal(t, "User already exists with this username", domainErr.Message)
	})

	t.Run("Should report duplicate email when a concurrent insert beats the pre-check", func(t *testing.T) {
		users := newFakeUserRepo()
		users.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		svc := service.NewAuthService(testAuthConfig(), users)

		_, err := svc.Register(ctx, service.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "whatever123",
		})
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, 400, domainErr.HTTPStatus)
		assert.Equal(t, "User already exists with this email", domainErr.Message)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, users *fakeUserRepo, status domain.UserStatus) {
		t.Helper()
		hash, err := auth.HashPassword("correct-horse", 4)
		require.NoError(t, err)
		users.add(&domain.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: hash,
			Role:         domain.RoleCustomer,
			Status:       status,
		})
	}

	t.Run("Should issue token for valid credentials", func(t *testing.T) {
		users := newFakeUserRepo()
		seed(t, users, domain.UserStatusActive)
		svc := service.NewAuthService(testAuthConfig(), users)

		user, token, expiresAt, err := svc.Login(ctx, "alice@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, token)
		assert.False(t, expiresAt.IsZero())

		claims, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, user.ID, id)
	})

	t.Run("Should return same error for unknown email and wrong password", func(t *testing.T) {
		users := newFakeUserRepo()
		seed(t, users, domain.UserStatusActive)
		svc := service.NewAuthService(testAuthConfig(), users)

		_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "correct-horse")
		_, _, _, wrongErr := svc.Login(ctx, "alice@example.com", "wrong-password")

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, apperrors.ToDomainError(unknownErr).Message, apperrors.ToDomainError(wrongErr).Message)
		assert.Equal(t, 401, apperrors.ToDomainError(unknownErr).HTTPStatus)
		assert.Equal(t, 401, apperrors.ToDomainError(wrongErr).HTTPStatus)
	})

	t.Run("Should reject banned account with correct password", func(t *testing.T) {
		users := newFakeUserRepo()
		seed(t, users, domain.UserStatusBanned)
		svc := service.NewAuthService(testAuthConfig(), users)

		_, _, _, err := svc.Login(ctx, "alice@example.com", "correct-horse")
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, 403, domainErr.HTTPStatus)
		assert.Equal(t, "Account is banned", domainErr.Message)
	})
}
