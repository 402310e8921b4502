package report

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

func sampleReport(userID, title string) *store.SavedReport {
	return &store.SavedReport{
		UserID: userID,
		Title:  title,
		Month:  "نوفمبر",
		Year:   "2025",
		Data:   []byte(`{"reportData":{},"settings":{}}`),
	}
}

func TestReportStore_Create(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("success - generates an id", func(t *testing.T) {
		id, err := f.store.Create(ctx, sampleReport("user-1", "تقرير نوفمبر"))
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		var count int
		err = f.db.QueryRow("SELECT COUNT(*) FROM reports WHERE user_id = ?", "user-1").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("success - keeps a supplied id", func(t *testing.T) {
		r := sampleReport("user-1", "تقرير بمعرف")
		r.ID = "fixed-id"
		id, err := f.store.Create(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", id)
	})
}

func TestReportStore_ListByUser(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.store.Create(ctx, sampleReport("user-a", "الأول"))
	require.NoError(t, err)
	_, err = f.store.Create(ctx, sampleReport("user-a", "الثاني"))
	require.NoError(t, err)
	_, err = f.store.Create(ctx, sampleReport("user-b", "لغيره"))
	require.NoError(t, err)

	metas, err := f.store.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, metas, 2)
	for _, m := range metas {
		assert.NotEmpty(t, m.ID)
		assert.NotZero(t, m.CreatedAt)
	}

	metas, err = f.store.ListByUser(ctx, "user-c")
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestReportStore_Get(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	id, err := f.store.Create(ctx, sampleReport("user-a", "تقرير"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		got, err := f.store.Get(ctx, id, "user-a")
		require.NoError(t, err)
		assert.Equal(t, "تقرير", got.Title)
		assert.JSONEq(t, `{"reportData":{},"settings":{}}`, string(got.Data))
	})

	t.Run("another user's id is not found", func(t *testing.T) {
		_, err := f.store.Get(ctx, id, "user-b")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := f.store.Get(ctx, "missing", "user-a")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestReportStore_Update(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	id, err := f.store.Create(ctx, sampleReport("user-a", "قبل"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		updated := sampleReport("user-a", "بعد")
		updated.ID = id
		updated.Data = []byte(`{"reportData":{"header":{}},"settings":{}}`)
		require.NoError(t, f.store.Update(ctx, updated))

		got, err := f.store.Get(ctx, id, "user-a")
		require.NoError(t, err)
		assert.Equal(t, "بعد", got.Title)
	})

	t.Run("scoped to the owning user", func(t *testing.T) {
		other := sampleReport("user-b", "اختراق")
		other.ID = id
		assert.ErrorIs(t, f.store.Update(ctx, other), store.ErrNotFound)
	})
}

func TestReportStore_Delete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	id, err := f.store.Create(ctx, sampleReport("user-a", "مؤقت"))
	require.NoError(t, err)

	assert.ErrorIs(t, f.store.Delete(ctx, id, "user-b"), store.ErrNotFound)
	require.NoError(t, f.store.Delete(ctx, id, "user-a"))
	assert.ErrorIs(t, f.store.Delete(ctx, id, "user-a"), store.ErrNotFound)
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	require.Error(t, err)
}
