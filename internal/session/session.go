// Package session implements server-side login sessions. A session is a
// record in a Store; the browser holds a signed token that references the
// record, so a forged or tampered cookie fails signature verification and a
// logged-out session fails the store lookup even if the cookie survives.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "codefolio_session"

// ErrInvalidSession covers every way a presented token can fail: bad
// signature, malformed claims, unknown or expired session record.
var ErrInvalidSession = errors.New("invalid or expired session")

// Record is the server-side session state.
type Record struct {
	ID        string
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// Store persists session records. Get returns (nil, nil) for a missing or
// expired session.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// Manager issues and resolves signed session tokens.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager signing tokens with secret. Sessions live for
// ttl from issuance.
func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Begin creates a session record for the user and returns the signed token
// to be set as the cookie value.
func (m *Manager) Begin(ctx context.Context, userID int64, username string) (string, error) {
	rec := &Record{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	if err := m.store.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": rec.ID,
		"sub": fmt.Sprintf("%d", rec.UserID),
		"un":  rec.Username,
		"exp": rec.ExpiresAt.Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Resolve verifies a token and returns the live session record behind it.
// The record, not the claims, is authoritative for user id and username.
func (m *Manager) Resolve(ctx context.Context, token string) (*Record, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return nil, ErrInvalidSession
	}

	rec, err := m.store.Get(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if rec == nil {
		return nil, ErrInvalidSession
	}
	return rec, nil
}

// End deletes the session record behind the token. A token that no longer
// resolves is treated as already ended.
func (m *Manager) End(ctx context.Context, token string) error {
	rec, err := m.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			return nil
		}
		return err
	}
	return m.store.Delete(ctx, rec.ID)
}
