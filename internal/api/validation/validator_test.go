package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/dto"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/validation"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

func TestStruct(t *testing.T) {
	t.Run("Should pass a valid payload", func(t *testing.T) {
		err := validation.Struct(&dto.RegisterRequest{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "correct-horse",
			FirstName: "Alice",
			LastName:  "Smith",
		})
		assert.NoError(t, err)
	})

	t.Run("Should report json field names", func(t *testing.T) {
		err := validation.Struct(&dto.RegisterRequest{
			Username: "al",
			Email:    "not-an-email",
			Password: "short",
		})
		require.Error(t, err)

		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, 400, domainErr.HTTPStatus)

		fields := make(map[string]string, len(domainErr.Fields))
		for _, fe := range domainErr.Fields {
			fields[fe.Field] = fe.Message
		}
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
		assert.Contains(t, fields, "firstName")
		assert.Equal(t, "must be a valid email address", fields["email"])
		assert.Equal(t, "must be at least 8", fields["password"])
	})

	t.Run("Should enforce oneof enums", func(t *testing.T) {
		err := validation.Struct(&dto.QRGenerateRequest{Content: "x", Format: "bmp"})
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		require.Len(t, domainErr.Fields, 1)
		assert.Equal(t, "format", domainErr.Fields[0].Field)
		assert.Equal(t, "must be one of png, svg, eps, jpeg, gif", domainErr.Fields[0].Message)
	})

	t.Run("Should allow omitted optional fields", func(t *testing.T) {
		assert.NoError(t, validation.Struct(&dto.QRGenerateRequest{Content: "x"}))
	})
}
