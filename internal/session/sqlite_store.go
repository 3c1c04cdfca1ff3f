package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLiteStore keeps session records in the sessions table of the main
// database. It is the default store when no Redis address is configured.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a session store backed by the given database.
func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts or replaces a session record.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	query := `INSERT OR REPLACE INTO sessions (id, user_id, username, expires_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, rec.ID, rec.UserID, rec.Username, rec.ExpiresAt); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get returns the session record, or (nil, nil) when missing or expired.
// Expired rows are deleted on sight.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	var row struct {
		ID        string    `db:"id"`
		UserID    int64     `db:"user_id"`
		Username  string    `db:"username"`
		ExpiresAt time.Time `db:"expires_at"`
	}

	query := `SELECT id, user_id, username, expires_at FROM sessions WHERE id = ?`
	err := s.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().After(row.ExpiresAt) {
		_ = s.Delete(ctx, id)
		return nil, nil
	}

	return &Record{ID: row.ID, UserID: row.UserID, Username: row.Username, ExpiresAt: row.ExpiresAt}, nil
}

// Delete removes a session record.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CleanupExpired drops every expired session row. Called once at startup.
func (s *SQLiteStore) CleanupExpired(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now()); err != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}
	return nil
}
