package service

import (
	"context"
	"errors"

	"codefolio/internal/models"
	"codefolio/internal/repository"

	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"
)

var userServiceTracer = otel.Tracer("service.user")

// UserService defines the interface for account business logic.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates an account with a hashed password. Returns
// ErrDuplicateUsername when the name is taken; the UNIQUE constraint decides
// the winner when two registrations race.
func (s *userService) Register(ctx context.Context, username, password string) (*models.User, error) {
	ctx, span := userServiceTracer.Start(ctx, "UserService.Register")
	defer span.End()

	user, err := s.userRepo.Create(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials. Every failure, unknown user or wrong
// password alike, is ErrInvalidCredentials so callers cannot enumerate
// usernames.
func (s *userService) Login(ctx context.Context, username, password string) (*models.User, error) {
	ctx, span := userServiceTracer.Start(ctx, "UserService.Login")
	defer span.End()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
