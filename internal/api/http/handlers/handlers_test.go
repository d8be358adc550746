package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	transport "github.com/Fakedev-cmd/botforge-services.it/internal/api/http"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/http/handlers"
	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
	"github.com/Fakedev-cmd/botforge-services.it/internal/config"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/events"
	"github.com/Fakedev-cmd/botforge-services.it/internal/observability"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*domain.User)}
}

func (r *memUserRepo) add(user *domain.User) *domain.User {
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

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.add(user)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
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

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
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

func (r *memUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *memUserRepo) UpdateStatus(_ context.Context, id int64, status domain.UserStatus) (*domain.User, error) {
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

type memRequestRepo struct {
	mu       sync.Mutex
	nextID   int64
	requests map[int64]*domain.PasswordChangeRequest
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[int64]*domain.PasswordChangeRequest)}
}

func (r *memRequestRepo) Create(_ context.Context, request *domain.PasswordChangeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	request.ID = r.nextID
	request.RequestedAt = time.Now()
	copied := *request
	r.requests[request.ID] = &copied
	return nil
}

func (r *memRequestRepo) GetByID(_ context.Context, id int64) (*domain.PasswordChangeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *request
	return &copied, nil
}

func (r *memRequestRepo) ListPending(_ context.Context) ([]repository.PasswordRequestWithUser, error) {
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

func (r *memRequestRepo) Process(_ context.Context, id int64, status domain.PasswordRequestStatus, processedBy int64) (*domain.PasswordChangeRequest, error) {
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

type handlerFixture struct {
	app      *fiber.App
	users    *memUserRepo
	requests *memRequestRepo
	tokens   *auth.TokenManager
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	users := newMemUserRepo()
	requests := newMemRequestRepo()
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            4,
	}, users)
	accountService := service.NewAccountService(users, requests, dispatcher)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), users)

	app := fiber.New()
	transport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), time.Second)

	authHandler := handlers.NewAuthHandler(authService)
	requestsHandler := handlers.NewPasswordRequestsHandler(accountService)
	app.Post("/api/register", authHandler.Register)
	app.Post("/api/password-requests", authMiddleware.Handle, requestsHandler.Create)
	app.Patch("/api/password-requests/:id", authMiddleware.Handle, requestsHandler.Process)

	return &handlerFixture{app: app, users: users, requests: requests, tokens: authService.TokenManager()}
}

func (f *handlerFixture) do(t *testing.T, method, target, body string, user *domain.User) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		token, _, err := f.tokens.GenerateToken(user)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Should answer a successful registration with 200", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp := f.do(t, http.MethodPost, "/api/register",
			`{"username":"alice","email":"alice@example.com","password":"correct-horse","firstName":"Alice","lastName":"Smith"}`,
			nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Should reject an invalid payload with 400", func(t *testing.T) {
		f := newHandlerFixture(t)

		resp := f.do(t, http.MethodPost, "/api/register",
			`{"username":"al","email":"nope","password":"short"}`, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPasswordRequestEndpoints(t *testing.T) {
	seedManager := func(f *handlerFixture) *domain.User {
		return f.users.add(&domain.User{
			Username: "mgr",
			Email:    "mgr@example.com",
			Role:     domain.RoleManager,
			Status:   domain.UserStatusActive,
		})
	}
	seedPending := func(t *testing.T, f *handlerFixture, userID int64) *domain.PasswordChangeRequest {
		t.Helper()
		request := &domain.PasswordChangeRequest{UserID: userID, Status: domain.PasswordRequestPending}
		require.NoError(t, f.requests.Create(context.Background(), request))
		return request
	}

	t.Run("Should answer a successful creation with 200", func(t *testing.T) {
		f := newHandlerFixture(t)
		customer := f.users.add(&domain.User{
			Username: "cust", Email: "cust@example.com",
			Role: domain.RoleCustomer, Status: domain.UserStatusActive,
		})

		resp := f.do(t, http.MethodPost, "/api/password-requests", `{}`, customer)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Should reject processedBy that is not the caller", func(t *testing.T) {
		f := newHandlerFixture(t)
		manager := seedManager(f)
		request := seedPending(t, f, 99)

		resp := f.do(t, http.MethodPatch, "/api/password-requests/1",
			`{"status":"approved","processedBy":12345}`, manager)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		current, err := f.requests.GetByID(context.Background(), request.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PasswordRequestPending, current.Status)
	})

	t.Run("Should accept matching or omitted processedBy", func(t *testing.T) {
		f := newHandlerFixture(t)
		manager := seedManager(f)
		request := seedPending(t, f, 99)

		resp := f.do(t, http.MethodPatch, "/api/password-requests/1",
			`{"status":"approved"}`, manager)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		current, err := f.requests.GetByID(context.Background(), request.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PasswordRequestApproved, current.Status)
		require.NotNil(t, current.ProcessedBy)
		assert.Equal(t, manager.ID, *current.ProcessedBy)
	})
}
