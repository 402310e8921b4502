package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mediadesk/taqrir/pkg/models/store"
	"github.com/mediadesk/taqrir/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func TestUserStore_Create(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("success - defaults to editor role", func(t *testing.T) {
		u := &store.User{Email: "sara@example.com", PasswordHash: "hash", DisplayName: "سارة"}
		require.NoError(t, f.store.Create(ctx, u))

		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "editor", u.Role)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		u := &store.User{Email: "sara@example.com", PasswordHash: "hash2"}
		assert.Error(t, f.store.Create(ctx, u))
	})
}

func TestUserStore_GetByEmail(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	created := &store.User{Email: "admin@example.com", PasswordHash: "hash", Role: "admin"}
	require.NoError(t, f.store.Create(ctx, created))

	t.Run("success", func(t *testing.T) {
		got, err := f.store.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "admin", got.Role)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := f.store.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Create(ctx, &store.User{Email: "a@example.com", PasswordHash: "h"}))
	require.NoError(t, f.store.Create(ctx, &store.User{Email: "b@example.com", PasswordHash: "h"}))

	users, err := f.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserStore_UpdateRole(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	u := &store.User{Email: "a@example.com", PasswordHash: "h"}
	require.NoError(t, f.store.Create(ctx, u))

	require.NoError(t, f.store.UpdateRole(ctx, u.ID, "admin"))
	got, err := f.store.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)

	assert.ErrorIs(t, f.store.UpdateRole(ctx, "missing", "admin"), store.ErrNotFound)
}

func TestUserStore_Delete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	u := &store.User{Email: "a@example.com", PasswordHash: "h"}
	require.NoError(t, f.store.Create(ctx, u))

	require.NoError(t, f.store.Delete(ctx, u.ID))
	_, err := f.store.GetByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, f.store.Delete(ctx, u.ID), store.ErrNotFound)
}
