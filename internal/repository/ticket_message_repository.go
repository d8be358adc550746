package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

// TicketMessageWithUser is a thread entry joined with its author.
type TicketMessageWithUser struct {
	domain.TicketMessage
	User domain.User `json:"user"`
}

// TicketMessageRepository manages ticket thread messages.
type TicketMessageRepository interface {
	Create(ctx context.Context, msg *domain.TicketMessage) error
	ListByTicket(ctx context.Context, ticketID int64) ([]TicketMessageWithUser, error)
}

type ticketMessageRepository struct {
	pool *pgxpool.Pool
}

// NewTicketMessageRepository builds repository.
func NewTicketMessageRepository(pool *pgxpool.Pool) TicketMessageRepository {
	return &ticketMessageRepository{pool: pool}
}

func (r *ticketMessageRepository) Create(ctx context.Context, msg *domain.TicketMessage) error {
	const query = `
        INSERT INTO ticket_messages (ticket_id, user_id, message, is_staff)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		msg.TicketID,
		msg.UserID,
		msg.Message,
		msg.IsStaff,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// ListByTicket returns the flat thread in creation order.
func (r *ticketMessageRepository) ListByTicket(ctx context.Context, ticketID int64) ([]TicketMessageWithUser, error) {
	const query = `
        SELECT m.id, m.ticket_id, m.user_id, m.message, m.is_staff, m.created_at, ` + joinedUserColumns + `
        FROM ticket_messages m
        JOIN users u ON u.id = m.user_id
        WHERE m.ticket_id=$1
        ORDER BY m.created_at ASC`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TicketMessageWithUser
	for rows.Next() {
		var (
			msg  domain.TicketMessage
			user domain.User
		)
		if err := rows.Scan(
			&msg.ID, &msg.TicketID, &msg.UserID, &msg.Message, &msg.IsStaff, &msg.CreatedAt,
			&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Role, &user.Status, &user.ProfileImage, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, TicketMessageWithUser{TicketMessage: msg, User: user})
	}
	return result, rows.Err()
}
