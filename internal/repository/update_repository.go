package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

// UpdateWithAuthor is an announcement joined with its author.
type UpdateWithAuthor struct {
	domain.Update
	Author domain.User `json:"author"`
}

// UpdateRepository encapsulates announcement persistence.
type UpdateRepository interface {
	Create(ctx context.Context, update *domain.Update) error
	ListAll(ctx context.Context) ([]UpdateWithAuthor, error)
}

type updateRepository struct {
	pool *pgxpool.Pool
}

// NewUpdateRepository instantiates repository.
func NewUpdateRepository(pool *pgxpool.Pool) UpdateRepository {
	return &updateRepository{pool: pool}
}

func (r *updateRepository) Create(ctx context.Context, update *domain.Update) error {
	const query = `
        INSERT INTO updates (title, content, author_id, is_feature_update, is_important)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		update.Title,
		update.Content,
		update.AuthorID,
		update.IsFeatureUpdate,
		update.IsImportant,
	).Scan(&update.ID, &update.CreatedAt)
}

func (r *updateRepository) ListAll(ctx context.Context) ([]UpdateWithAuthor, error) {
	const query = `
        SELECT up.id, up.title, up.content, up.author_id, up.is_feature_update, up.is_important, up.created_at, ` + joinedUserColumns + `
        FROM updates up
        JOIN users u ON u.id = up.author_id
        ORDER BY up.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []UpdateWithAuthor
	for rows.Next() {
		var (
			update domain.Update
			author domain.User
		)
		if err := rows.Scan(
			&update.ID, &update.Title, &update.Content, &update.AuthorID, &update.IsFeatureUpdate, &update.IsImportant, &update.CreatedAt,
			&author.ID, &author.Username, &author.Email, &author.PasswordHash, &author.FirstName, &author.LastName, &author.Role, &author.Status, &author.ProfileImage, &author.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, UpdateWithAuthor{Update: update, Author: author})
	}
	return result, rows.Err()
}
