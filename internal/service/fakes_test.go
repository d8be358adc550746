package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/events"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
)

// In-memory repository fakes. Each assigns sequential IDs and returns
// pgx.ErrNoRows for missing rows, matching the real implementations.

type fakeUserRepo struct {
	mu        sync.Mutex
	nextID    int64
	users     map[int64]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) add(user *domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == 0 {
		r.nextID++
		user.ID = r.nextID
	} else if user.ID > r.nextID {
		r.nextID = user.ID
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.CreatedAt = time.Now()
	r.add(user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateStatus(_ context.Context, id int64, status domain.UserStatus) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.Status = status
	copied := *user
	return &copied, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*domain.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	product.ID = r.nextID
	product.CreatedAt = time.Now()
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) ListActive(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if product.Status == domain.ProductStatusActive {
			out = append(out, *product)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]*domain.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	order.ID = r.nextID
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context) ([]repository.OrderDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.OrderDetail, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, repository.OrderDetail{Order: *order})
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]repository.OrderWithProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.OrderWithProduct, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, repository.OrderWithProduct{Order: *order})
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	copied := *order
	return &copied, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	nextID  int64
	reviews []domain.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	review.ID = r.nextID
	review.CreatedAt = time.Now()
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) ListAll(_ context.Context) ([]repository.ReviewWithUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.ReviewWithUser, 0, len(r.reviews))
	for _, review := range r.reviews {
		out = append(out, repository.ReviewWithUser{Review: review})
	}
	return out, nil
}

type fakeUpdateRepo struct {
	mu      sync.Mutex
	nextID  int64
	updates []domain.Update
}

func (r *fakeUpdateRepo) Create(_ context.Context, update *domain.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	update.ID = r.nextID
	update.CreatedAt = time.Now()
	r.updates = append(r.updates, *update)
	return nil
}

func (r *fakeUpdateRepo) ListAll(_ context.Context) ([]repository.UpdateWithAuthor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.UpdateWithAuthor, 0, len(r.updates))
	for _, update := range r.updates {
		out = append(out, repository.UpdateWithAuthor{Update: update})
	}
	return out, nil
}

type fakeTicketRepo struct {
	mu      sync.Mutex
	nextID  int64
	tickets map[int64]*domain.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[int64]*domain.Ticket)}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ticket.ID = r.nextID
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	copied := *ticket
	r.tickets[ticket.ID] = &copied
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (r *fakeTicketRepo) GetWithUser(_ context.Context, id int64) (*repository.TicketWithUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &repository.TicketWithUser{Ticket: *ticket}, nil
}

func (r *fakeTicketRepo) ListAll(_ context.Context) ([]repository.TicketWithUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.TicketWithUser, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		out = append(out, repository.TicketWithUser{Ticket: *ticket})
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByUser(_ context.Context, userID int64) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Ticket, 0)
	for _, ticket := range r.tickets {
		if ticket.UserID == userID {
			out = append(out, *ticket)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	ticket.Status = status
	ticket.UpdatedAt = time.Now()
	copied := *ticket
	return &copied, nil
}

type fakeTicketMessageRepo struct {
	mu       sync.Mutex
	nextID   int64
	messages []domain.TicketMessage
}

func (r *fakeTicketMessageRepo) Create(_ context.Context, msg *domain.TicketMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	msg.ID = r.nextID
	msg.CreatedAt = time.Now()
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeTicketMessageRepo) ListByTicket(_ context.Context, ticketID int64) ([]repository.TicketMessageWithUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.TicketMessageWithUser, 0)
	for _, msg := range r.messages {
		if msg.TicketID == ticketID {
			out = append(out, repository.TicketMessageWithUser{TicketMessage: msg})
		}
	}
	return out, nil
}

type fakePasswordRequestRepo struct {
	mu       sync.Mutex
	nextID   int64
	requests map[int64]*domain.PasswordChangeRequest
}

func newFakePasswordRequestRepo() *fakePasswordRequestRepo {
	return &fakePasswordRequestRepo{requests: make(map[int64]*domain.PasswordChangeRequest)}
}

func (r *fakePasswordRequestRepo) Create(_ context.Context, request *domain.PasswordChangeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	request.ID = r.nextID
	request.RequestedAt = time.Now()
	copied := *request
	r.requests[request.ID] = &copied
	return nil
}

func (r *fakePasswordRequestRepo) GetByID(_ context.Context, id int64) (*domain.PasswordChangeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *request
	return &copied, nil
}

func (r *fakePasswordRequestRepo) ListPending(_ context.Context) ([]repository.PasswordRequestWithUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repository.PasswordRequestWithUser, 0)
	for _, request := range r.requests {
		if request.Status == domain.PasswordRequestPending {
			out = append(out, repository.PasswordRequestWithUser{PasswordChangeRequest: *request})
		}
	}
	return out, nil
}

func (r *fakePasswordRequestRepo) Process(_ context.Context, id int64, status domain.PasswordRequestStatus, processedBy int64) (*domain.PasswordChangeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok || request.Status != domain.PasswordRequestPending {
		return nil, pgx.ErrNoRows
	}
	now := time.Now()
	request.Status = status
	request.ProcessedAt = &now
	request.ProcessedBy = &processedBy
	copied := *request
	return &copied, nil
}

// recordingDispatcher captures every published event for assertions.
func recordingDispatcher() (events.Dispatcher, *[]events.Event) {
	dispatcher := events.NewInMemoryDispatcher()
	captured := &[]events.Event{}
	record := func(_ context.Context, event events.Event) error {
		*captured = append(*captured, event)
		return nil
	}
	for _, eventType := range []events.EventType{
		events.EventOrderCreated,
		events.EventOrderStatusChanged,
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
		events.EventTicketMessageAdded,
		events.EventUpdatePublished,
		events.EventUserBanned,
		events.EventPasswordRequestProcessed,
	} {
		dispatcher.Subscribe(eventType, record)
	}
	return dispatcher, captured
}

func activeUser(id int64, role domain.Role) *domain.User {
	return &domain.User{
		ID:       id,
		Username: "user" + string(rune('0'+id%10)),
		Email:    "user@example.com",
		Role:     role,
		Status:   domain.UserStatusActive,
	}
}
