package session

import (
	"context"
	"testing"
	"time"

	"codefolio/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	pool, err := db.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.InitSchema(pool))
	t.Cleanup(func() { pool.Close() })
	return pool
}

func newRecord(userID int64, username string, ttl time.Duration) *Record {
	return &Record{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestSQLiteStore_SaveGetDelete(t *testing.T) {
	store := NewSQLiteStore(newTestDB(t))
	ctx := context.Background()

	rec := newRecord(7, "alice", time.Hour)
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, store.Delete(ctx, rec.ID))

	got, err = store.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := NewSQLiteStore(newTestDB(t))

	got, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_ExpiredSessionIsGone(t *testing.T) {
	store := NewSQLiteStore(newTestDB(t))
	ctx := context.Background()

	rec := newRecord(7, "alice", -time.Minute)
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_CleanupExpired(t *testing.T) {
	pool := newTestDB(t)
	store := NewSQLiteStore(pool)
	ctx := context.Background()

	expired := newRecord(1, "old", -time.Hour)
	live := newRecord(2, "fresh", time.Hour)
	require.NoError(t, store.Save(ctx, expired))
	require.NoError(t, store.Save(ctx, live))

	require.NoError(t, store.CleanupExpired(ctx))

	var count int
	require.NoError(t, pool.Get(&count, `SELECT COUNT(*) FROM sessions`))
	assert.Equal(t, 1, count)

	got, err := store.Get(ctx, live.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "fresh", got.Username)
}
