package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

// PasswordRequestWithUser is a request joined with the requesting user.
type PasswordRequestWithUser struct {
	domain.PasswordChangeRequest
	User domain.User `json:"user"`
}

// PasswordRequestRepository manages password change request persistence.
type PasswordRequestRepository interface {
	Create(ctx context.Context, request *domain.PasswordChangeRequest) error
	GetByID(ctx context.Context, id int64) (*domain.PasswordChangeRequest, error)
	ListPending(ctx context.Context) ([]PasswordRequestWithUser, error)
	Process(ctx context.Context, id int64, status domain.PasswordRequestStatus, processedBy int64) (*domain.PasswordChangeRequest, error)
}

type passwordRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPasswordRequestRepository constructs repository.
func NewPasswordRequestRepository(pool *pgxpool.Pool) PasswordRequestRepository {
	return &passwordRequestRepository{pool: pool}
}

const requestColumns = `r.id, r.user_id, r.status, r.requested_at, r.processed_at, r.processed_by`

func (r *passwordRequestRepository) Create(ctx context.Context, request *domain.PasswordChangeRequest) error {
	const query = `
        INSERT INTO password_change_requests (user_id, status)
        VALUES ($1,$2)
        RETURNING id, requested_at`

	return r.pool.QueryRow(ctx, query,
		request.UserID,
		request.Status,
	).Scan(&request.ID, &request.RequestedAt)
}

func (r *passwordRequestRepository) GetByID(ctx context.Context, id int64) (*domain.PasswordChangeRequest, error) {
	const query = `SELECT ` + requestColumns + ` FROM password_change_requests r WHERE r.id=$1`

	var request domain.PasswordChangeRequest
	if err := scanPasswordRequest(r.pool.QueryRow(ctx, query, id), &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListPending mirrors the admin console view: only unprocessed requests,
// newest first.
func (r *passwordRequestRepository) ListPending(ctx context.Context) ([]PasswordRequestWithUser, error) {
	const query = `
        SELECT ` + requestColumns + `, ` + joinedUserColumns + `
        FROM password_change_requests r
        JOIN users u ON u.id = r.user_id
        WHERE r.status=$1
        ORDER BY r.requested_at DESC`

	rows, err := r.pool.Query(ctx, query, domain.PasswordRequestPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PasswordRequestWithUser
	for rows.Next() {
		var (
			request domain.PasswordChangeRequest
			user    domain.User
		)
		if err := rows.Scan(
			&request.ID, &request.UserID, &request.Status, &request.RequestedAt, &request.ProcessedAt, &request.ProcessedBy,
			&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Role, &user.Status, &user.ProfileImage, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, PasswordRequestWithUser{PasswordChangeRequest: request, User: user})
	}
	return result, rows.Err()
}

// Process moves a pending request to a terminal state, recording the
// processing actor and timestamp. The status guard in the WHERE clause makes
// the terminal transition single-shot even under concurrent processing.
func (r *passwordRequestRepository) Process(ctx context.Context, id int64, status domain.PasswordRequestStatus, processedBy int64) (*domain.PasswordChangeRequest, error) {
	const query = `
        UPDATE password_change_requests r
        SET status=$1, processed_by=$2, processed_at=NOW()
        WHERE r.id=$3 AND r.status=$4
        RETURNING ` + requestColumns

	var request domain.PasswordChangeRequest
	if err := scanPasswordRequest(
		r.pool.QueryRow(ctx, query, status, processedBy, id, domain.PasswordRequestPending),
		&request,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func scanPasswordRequest(row pgx.Row, request *domain.PasswordChangeRequest) error {
	return row.Scan(
		&request.ID,
		&request.UserID,
		&request.Status,
		&request.RequestedAt,
		&request.ProcessedAt,
		&request.ProcessedBy,
	)
}
