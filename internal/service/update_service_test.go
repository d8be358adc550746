package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/events"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

func TestUpdateService_PublishUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should allow owner and manager to publish", func(t *testing.T) {
		updates := &fakeUpdateRepo{}
		dispatcher, captured := recordingDispatcher()
		svc := service.NewUpdateService(updates, dispatcher)

		for _, role := range []domain.Role{domain.RoleOwner, domain.RoleManager} {
			update, err := svc.PublishUpdate(ctx, activeUser(1, role), service.UpdateInput{
				Title:       "v2 released",
				Content:     "New dashboard",
				IsImportant: true,
			})
			require.NoError(t, err, "role %s", role)
			assert.Equal(t, int64(1), update.AuthorID)
		}
		assert.Len(t, *captured, 2)
		assert.Equal(t, events.EventUpdatePublished, (*captured)[0].Type)
	})

	t.Run("Should forbid other roles from publishing", func(t *testing.T) {
		updates := &fakeUpdateRepo{}
		dispatcher, _ := recordingDispatcher()
		svc := service.NewUpdateService(updates, dispatcher)

		for _, role := range []domain.Role{domain.RoleDeveloper, domain.RoleCustomer, domain.RoleUser} {
			_, err := svc.PublishUpdate(ctx, activeUser(1, role), service.UpdateInput{
				Title:   "v2 released",
				Content: "New dashboard",
			})
			require.Error(t, err, "role %s", role)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, 403, domainErr.HTTPStatus)
			assert.Equal(t, "Only owners and managers can publish updates", domainErr.Message)
		}
	})
}
