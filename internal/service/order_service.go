package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/events"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// OrderService coordinates order workflows.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, products: products, dispatcher: dispatcher}
}

// CreateOrder places an order for the acting user. The amount is the product
// price at this moment; later price changes never touch existing orders.
func (s *OrderService) CreateOrder(ctx context.Context, actor *domain.User, productID int64) (*domain.Order, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Product")
		}
		return nil, err
	}

	order := &domain.Order{
		UserID:    actor.ID,
		ProductID: product.ID,
		Status:    domain.OrderStatusPending,
		Amount:    product.Price,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventOrderCreated,
		Actor: actorFor(actor),
		Payload: events.OrderCreatedPayload{
			OrderID:   order.ID,
			ProductID: order.ProductID,
			Amount:    order.Amount.String(),
		},
	})
	return order, nil
}

// ListAll returns every order with user and product, for the admin console.
func (s *OrderService) ListAll(ctx context.Context) ([]repository.OrderDetail, error) {
	return s.orders.ListAll(ctx)
}

// ListForUser returns a user's own orders with products.
func (s *OrderService) ListForUser(ctx context.Context, userID int64) ([]repository.OrderWithProduct, error) {
	return s.orders.ListByUser(ctx, userID)
}

// UpdateStatus assigns a new status. Any known status may follow any other;
// only membership in the enum is checked.
func (s *OrderService) UpdateStatus(ctx context.Context, actor *domain.User, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Invalid input", []apperrors.FieldError{
			{Field: "status", Message: "must be one of pending, development, delivered"},
		})
	}

	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Order")
		}
		return nil, err
	}

	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Order")
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventOrderStatusChanged,
		Actor: actorFor(actor),
		Payload: events.OrderStatusChangedPayload{
			OrderID:   order.ID,
			OldStatus: current.Status,
			NewStatus: order.Status,
		},
	})
	return order, nil
}

func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}

func actorFor(user *domain.User) events.Actor {
	if user == nil {
		return events.Actor{}
	}
	return events.Actor{UserID: user.ID, Role: user.Role}
}
