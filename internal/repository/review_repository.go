package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

// ReviewWithUser is a review joined with its author for the public feed.
type ReviewWithUser struct {
	domain.Review
	User domain.User `json:"user"`
}

// ReviewRepository encapsulates review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListAll(ctx context.Context) ([]ReviewWithUser, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository instantiates repository.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
        INSERT INTO reviews (user_id, rating, content)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		review.UserID,
		review.Rating,
		review.Content,
	).Scan(&review.ID, &review.CreatedAt)
}

func (r *reviewRepository) ListAll(ctx context.Context) ([]ReviewWithUser, error) {
	const query = `
        SELECT rv.id, rv.user_id, rv.rating, rv.content, rv.created_at, ` + joinedUserColumns + `
        FROM reviews rv
        JOIN users u ON u.id = rv.user_id
        ORDER BY rv.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ReviewWithUser
	for rows.Next() {
		var (
			review domain.Review
			user   domain.User
		)
		if err := rows.Scan(
			&review.ID, &review.UserID, &review.Rating, &review.Content, &review.CreatedAt,
			&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Role, &user.Status, &user.ProfileImage, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ReviewWithUser{Review: review, User: user})
	}
	return result, rows.Err()
}
