package service

import (
	"context"

	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/events"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// UpdateService coordinates the announcement feed.
type UpdateService struct {
	updates    repository.UpdateRepository
	dispatcher events.Dispatcher
}

// NewUpdateService constructs the service.
func NewUpdateService(updates repository.UpdateRepository, dispatcher events.Dispatcher) *UpdateService {
	return &UpdateService{updates: updates, dispatcher: dispatcher}
}

// UpdateInput describes a new announcement.
type UpdateInput struct {
	Title           string
	Content         string
	IsFeatureUpdate bool
	IsImportant     bool
}

// ListAll returns every announcement with its author, newest first.
func (s *UpdateService) ListAll(ctx context.Context) ([]repository.UpdateWithAuthor, error) {
	return s.updates.ListAll(ctx)
}

// PublishUpdate creates an announcement authored by the acting user, gated on
// publish_updates.
func (s *UpdateService) PublishUpdate(ctx context.Context, actor *domain.User, input UpdateInput) (*domain.Update, error) {
	if !auth.HasPermission(actor.Role, auth.PermissionPublishUpdates) {
		return nil, apperrors.NewForbidden("Only owners and managers can publish updates")
	}

	update := &domain.Update{
		Title:           input.Title,
		Content:         input.Content,
		AuthorID:        actor.ID,
		IsFeatureUpdate: input.IsFeatureUpdate,
		IsImportant:     input.IsImportant,
	}
	if err := s.updates.Create(ctx, update); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventUpdatePublished,
		Actor: actorFor(actor),
		Payload: events.UpdatePublishedPayload{
			UpdateID:    update.ID,
			Title:       update.Title,
			IsImportant: update.IsImportant,
		},
	})
	return update, nil
}
