package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mediadesk/taqrir/pkg/models/domain"
	"github.com/mediadesk/taqrir/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, user *store.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func setupService(t *testing.T) (*Service, *mockUserStore) {
	users := new(mockUserStore)
	svc, err := NewService(users, Config{Secret: "test-secret"})
	require.NoError(t, err)
	return svc, users
}

func storedUser(t *testing.T, password string) *store.User {
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &store.User{
		ID:           "user-1",
		Email:        "sara@example.com",
		PasswordHash: hash,
		Role:         "editor",
	}
}

func TestNewService(t *testing.T) {
	users := new(mockUserStore)

	_, err := NewService(nil, Config{Secret: "x"})
	require.Error(t, err)

	_, err = NewService(users, Config{})
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, users := setupService(t)
		user := storedUser(t, "correct-horse")
		users.On("GetByEmail", ctx, "sara@example.com").Return(user, nil)

		token, got, err := svc.Login(ctx, "sara@example.com", "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "user-1", got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users := setupService(t)
		users.On("GetByEmail", ctx, "sara@example.com").Return(storedUser(t, "correct-horse"), nil)

		_, _, err := svc.Login(ctx, "sara@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, users := setupService(t)
		users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, store.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := setupService(t)
	user := &store.User{ID: "user-9", Email: "admin@example.com", Role: "admin"}

	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	identity, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", identity.UserID)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestVerifyToken(t *testing.T) {
	svc, _ := setupService(t)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		users := new(mockUserStore)
		other, err := NewService(users, Config{Secret: "different"})
		require.NoError(t, err)

		token, err := other.IssueToken(&store.User{ID: "u", Email: "e"})
		require.NoError(t, err)

		_, err = svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		users := new(mockUserStore)
		expired, err := NewService(users, Config{Secret: "test-secret", TokenTTL: time.Nanosecond})
		require.NoError(t, err)
		token, err := expired.IssueToken(&store.User{ID: "u", Email: "e"})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	svc, _ := setupService(t)

	var seen *Identity
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		token, err := svc.IssueToken(&store.User{ID: "user-1", Email: "sara@example.com", Role: "editor"})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "user-1", seen.UserID)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(next)

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("editor is rejected", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), contextKey{}, &Identity{Role: domain.RoleEditor})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), contextKey{}, &Identity{Role: domain.RoleAdmin})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
