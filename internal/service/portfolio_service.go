package service

import (
	"context"

	"codefolio/internal/models"
	"codefolio/internal/repository"

	"go.opentelemetry.io/otel"
)

var portfolioTracer = otel.Tracer("service.portfolio")

// PortfolioService defines the interface for the public, unauthenticated
// read surface.
type PortfolioService interface {
	Profile(ctx context.Context, username string) (*models.User, []models.Project, error)
	Search(ctx context.Context, query string) ([]models.User, error)
}

type portfolioService struct {
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(userRepo repository.UserRepository, projectRepo repository.ProjectRepository) PortfolioService {
	return &portfolioService{userRepo: userRepo, projectRepo: projectRepo}
}

// Profile returns a user and their full project list, newest first.
// Every portfolio is public; the caller's identity is irrelevant.
func (s *portfolioService) Profile(ctx context.Context, username string) (*models.User, []models.Project, error) {
	ctx, span := portfolioTracer.Start(ctx, "PortfolioService.Profile")
	defer span.End()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrNotFound
	}

	projects, err := s.projectRepo.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, projects, nil
}

// Search returns users whose username contains query, case-insensitively.
// An empty query returns an empty set without touching the database.
func (s *portfolioService) Search(ctx context.Context, query string) ([]models.User, error) {
	ctx, span := portfolioTracer.Start(ctx, "PortfolioService.Search")
	defer span.End()

	if query == "" {
		return []models.User{}, nil
	}
	return s.userRepo.SearchByUsername(ctx, query)
}
