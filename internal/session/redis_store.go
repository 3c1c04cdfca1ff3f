package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps session records in Redis hashes with the record's
// lifetime as the key TTL, so expiry needs no cleanup pass.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a session store backed by the given Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Save writes the record hash and sets its expiry.
func (s *RedisStore) Save(ctx context.Context, rec *Record) error {
	key := sessionKey(rec.ID)
	err := s.rdb.HSet(ctx, key,
		"user_id", strconv.FormatInt(rec.UserID, 10),
		"username", rec.Username,
		"expires_at", strconv.FormatInt(rec.ExpiresAt.Unix(), 10),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.rdb.ExpireAt(ctx, key, rec.ExpiresAt).Err(); err != nil {
		return fmt.Errorf("failed to set session expiry: %w", err)
	}
	return nil
}

// Get returns the session record, or (nil, nil) once Redis has expired the
// key.
func (s *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	userID, err := strconv.ParseInt(data["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session record %s: %w", id, err)
	}
	expiresAt, err := strconv.ParseInt(data["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session record %s: %w", id, err)
	}

	return &Record{
		ID:        id,
		UserID:    userID,
		Username:  data["username"],
		ExpiresAt: time.Unix(expiresAt, 0),
	}, nil
}

// Delete removes a session record.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
