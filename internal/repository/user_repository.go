package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"codefolio/internal/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"
)

var userTracer = otel.Tracer("repository.user")

// ErrDuplicateUsername reports a violation of the users.username UNIQUE
// constraint. The constraint is the atomic arbiter when two registrations
// race on the same name.
var ErrDuplicateUsername = errors.New("username already taken")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, username, password string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	SearchByUsername(ctx context.Context, query string) ([]models.User, error)
	Delete(ctx context.Context, id int64) error
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// Create hashes the password and inserts a new user.
func (r *sqliteUserRepository) Create(ctx context.Context, username, password string) (*models.User, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, username, string(hashedPassword))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new user id: %w", err)
	}

	return &models.User{ID: id, Username: username, PasswordHash: string(hashedPassword)}, nil
}

// GetByUsername retrieves a user by username. A missing user is reported as
// (nil, nil), not as an error.
func (r *sqliteUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.GetByUsername")
	defer span.End()

	var user models.User
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// SearchByUsername returns every user whose username contains query as a
// case-insensitive substring.
func (r *sqliteUserRepository) SearchByUsername(ctx context.Context, query string) ([]models.User, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.SearchByUsername")
	defer span.End()

	users := []models.User{}
	q := `SELECT id, username, password_hash FROM users WHERE username LIKE ? ORDER BY username`
	if err := r.db.SelectContext(ctx, &users, q, "%"+query+"%"); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// Delete removes a user; the schema cascades the delete to the user's
// projects.
func (r *sqliteUserRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := userTracer.Start(ctx, "UserRepository.Delete")
	defer span.End()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
