package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Should allow customer and user roles", func(t *testing.T) {
		reviews := &fakeReviewRepo{}
		svc := service.NewReviewService(reviews)

		for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleUser} {
			review, err := svc.CreateReview(ctx, activeUser(1, role), 5, "great bot")
			require.NoError(t, err)
			assert.Equal(t, 5, review.Rating)
		}
	})

	t.Run("Should forbid staff roles from reviewing", func(t *testing.T) {
		reviews := &fakeReviewRepo{}
		svc := service.NewReviewService(reviews)

		for _, role := range []domain.Role{domain.RoleOwner, domain.RoleManager, domain.RoleDeveloper} {
			_, err := svc.CreateReview(ctx, activeUser(1, role), 5, "great bot")
			require.Error(t, err, "role %s", role)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, 403, domainErr.HTTPStatus)
			assert.Equal(t, "Only customers and users can write reviews", domainErr.Message)
		}
	})
}
