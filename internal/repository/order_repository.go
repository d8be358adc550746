package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

// OrderDetail is an order joined with its user and product for admin views.
type OrderDetail struct {
	domain.Order
	User    domain.User    `json:"user"`
	Product domain.Product `json:"product"`
}

// OrderWithProduct is an order joined with its product for customer views.
type OrderWithProduct struct {
	domain.Order
	Product domain.Product `json:"product"`
}

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListAll(ctx context.Context) ([]OrderDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]OrderWithProduct, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `o.id, o.user_id, o.product_id, o.status, o.amount::text, o.created_at, o.updated_at`

const joinedUserColumns = `u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.status, u.profile_image, u.created_at`

const joinedProductColumns = `p.id, p.name, p.description, p.price::text, p.features, p.category, p.status, p.created_at`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (user_id, product_id, status, amount)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		order.UserID,
		order.ProductID,
		order.Status,
		order.Amount.String(),
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders o WHERE o.id=$1`

	var order domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, query, id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]OrderDetail, error) {
	const query = `
        SELECT ` + orderColumns + `, ` + joinedUserColumns + `, ` + joinedProductColumns + `
        FROM orders o
        JOIN users u ON u.id = o.user_id
        JOIN products p ON p.id = o.product_id
        ORDER BY o.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OrderDetail
	for rows.Next() {
		var (
			detail domain.Order
			user   domain.User
			prod   domain.Product
			amount string
			price  string
		)
		if err := rows.Scan(
			&detail.ID, &detail.UserID, &detail.ProductID, &detail.Status, &amount, &detail.CreatedAt, &detail.UpdatedAt,
			&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Role, &user.Status, &user.ProfileImage, &user.CreatedAt,
			&prod.ID, &prod.Name, &prod.Description, &price, &prod.Features, &prod.Category, &prod.Status, &prod.CreatedAt,
		); err != nil {
			return nil, err
		}
		if detail.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		if prod.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		result = append(result, OrderDetail{Order: detail, User: user, Product: prod})
	}
	return result, rows.Err()
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]OrderWithProduct, error) {
	const query = `
        SELECT ` + orderColumns + `, ` + joinedProductColumns + `
        FROM orders o
        JOIN products p ON p.id = o.product_id
        WHERE o.user_id=$1
        ORDER BY o.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OrderWithProduct
	for rows.Next() {
		var (
			order  domain.Order
			prod   domain.Product
			amount string
			price  string
		)
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.ProductID, &order.Status, &amount, &order.CreatedAt, &order.UpdatedAt,
			&prod.ID, &prod.Name, &prod.Description, &price, &prod.Features, &prod.Category, &prod.Status, &prod.CreatedAt,
		); err != nil {
			return nil, err
		}
		if order.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		if prod.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		result = append(result, OrderWithProduct{Order: order, Product: prod})
	}
	return result, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	const query = `
        UPDATE orders o SET status=$1, updated_at=NOW()
        WHERE o.id=$2
        RETURNING ` + orderColumns

	var order domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, query, status, id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func scanOrder(row pgx.Row, order *domain.Order) error {
	var amount string
	if err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.Status,
		&amount,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return err
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	order.Amount = parsed
	return nil
}
