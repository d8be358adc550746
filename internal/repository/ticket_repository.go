package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

// TicketWithUser is a ticket joined with its requester.
type TicketWithUser struct {
	domain.Ticket
	User domain.User `json:"user"`
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	GetWithUser(ctx context.Context, id int64) (*TicketWithUser, error)
	ListAll(ctx context.Context) ([]TicketWithUser, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `t.id, t.user_id, t.subject, t.description, t.priority, t.category, t.status, t.created_at, t.updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (user_id, subject, description, priority, category, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		ticket.UserID,
		ticket.Subject,
		ticket.Description,
		ticket.Priority,
		ticket.Category,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.id=$1`

	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) GetWithUser(ctx context.Context, id int64) (*TicketWithUser, error) {
	const query = `
        SELECT ` + ticketColumns + `, ` + joinedUserColumns + `
        FROM tickets t
        JOIN users u ON u.id = t.user_id
        WHERE t.id=$1`

	var (
		ticket domain.Ticket
		user   domain.User
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID, &ticket.UserID, &ticket.Subject, &ticket.Description, &ticket.Priority, &ticket.Category, &ticket.Status, &ticket.CreatedAt, &ticket.UpdatedAt,
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Role, &user.Status, &user.ProfileImage, &user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &TicketWithUser{Ticket: ticket, User: user}, nil
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]TicketWithUser, error) {
	const query = `
        SELECT ` + ticketColumns + `, ` + joinedUserColumns + `
        FROM tickets t
        JOIN users u ON u.id = t.user_id
        ORDER BY t.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TicketWithUser
	for rows.Next() {
		var (
			ticket domain.Ticket
			user   domain.User
		)
		if err := rows.Scan(
			&ticket.ID, &ticket.UserID, &ticket.Subject, &ticket.Description, &ticket.Priority, &ticket.Category, &ticket.Status, &ticket.CreatedAt, &ticket.UpdatedAt,
			&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Role, &user.Status, &user.ProfileImage, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, TicketWithUser{Ticket: ticket, User: user})
	}
	return result, rows.Err()
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.user_id=$1 ORDER BY t.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	const query = `
        UPDATE tickets t SET status=$1, updated_at=NOW()
        WHERE t.id=$2
        RETURNING ` + ticketColumns

	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, status, id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTicket(row pgx.Row, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.Subject,
		&ticket.Description,
		&ticket.Priority,
		&ticket.Category,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}
