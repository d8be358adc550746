package service

import (
	"context"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// ReviewService coordinates the public review feed.
type ReviewService struct {
	reviews repository.ReviewRepository
}

// NewReviewService constructs the service.
func NewReviewService(reviews repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// ListAll returns every review with its author, newest first.
func (s *ReviewService) ListAll(ctx context.Context) ([]repository.ReviewWithUser, error) {
	return s.reviews.ListAll(ctx)
}

// CreateReview stores feedback from the acting user. Only customer and user
// roles may write reviews; staff roles are rejected.
func (s *ReviewService) CreateReview(ctx context.Context, actor *domain.User, rating int, content string) (*domain.Review, error) {
	if actor.Role != domain.RoleCustomer && actor.Role != domain.RoleUser {
		return nil, apperrors.NewForbidden("Only customers and users can write reviews")
	}

	review := &domain.Review{
		UserID:  actor.ID,
		Rating:  rating,
		Content: content,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
