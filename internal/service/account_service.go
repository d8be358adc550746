package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/events"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// AccountService covers user administration and password change requests.
type AccountService struct {
	users      repository.UserRepository
	requests   repository.PasswordRequestRepository
	dispatcher events.Dispatcher
}

// NewAccountService constructs the service.
func NewAccountService(users repository.UserRepository, requests repository.PasswordRequestRepository, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{users: users, requests: requests, dispatcher: dispatcher}
}

// ListUsers returns every account for the admin console. Password hashes
// never serialize.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

// BanUser sets the account status to banned. Existing tokens die on the next
// request because the middleware reloads the row.
func (s *AccountService) BanUser(ctx context.Context, actor *domain.User, id int64) (*domain.User, error) {
	user, err := s.users.UpdateStatus(ctx, id, domain.UserStatusBanned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventUserBanned,
		Actor:   actorFor(actor),
		Payload: events.UserBannedPayload{UserID: user.ID},
	})
	return user, nil
}

// ListPendingRequests returns unprocessed password change requests.
func (s *AccountService) ListPendingRequests(ctx context.Context) ([]repository.PasswordRequestWithUser, error) {
	return s.requests.ListPending(ctx)
}

// CreateRequest files a password change request for the acting user.
func (s *AccountService) CreateRequest(ctx context.Context, actor *domain.User) (*domain.PasswordChangeRequest, error) {
	request := &domain.PasswordChangeRequest{
		UserID: actor.ID,
		Status: domain.PasswordRequestPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ProcessRequest moves a pending request to approved or declined, recording
// who processed it and when. Terminal states are set exactly once; processing
// an already-processed request is a conflict.
func (s *AccountService) ProcessRequest(ctx context.Context, actor *domain.User, id int64, status domain.PasswordRequestStatus) (*domain.PasswordChangeRequest, error) {
	if !status.Terminal() {
		return nil, apperrors.NewValidationError("Invalid input", []apperrors.FieldError{
			{Field: "status", Message: "must be approved or declined"},
		})
	}

	current, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Request")
		}
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, apperrors.NewConflict("Request already processed")
	}

	request, err := s.requests.Process(ctx, id, status, actor.ID)
	if err != nil {
		// A concurrent processor won the status-guarded update.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflict("Request already processed")
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventPasswordRequestProcessed,
		Actor: actorFor(actor),
		Payload: events.PasswordRequestProcessedPayload{
			RequestID: request.ID,
			Status:    request.Status,
		},
	})
	return request, nil
}
