package service

import (
	"context"

	"codefolio/internal/models"
	"codefolio/internal/repository"

	"go.opentelemetry.io/otel"
)

var projectServiceTracer = otel.Tracer("service.project")

// ProjectService defines the interface for owner-scoped project operations.
// Every mutation checks existence first (ErrNotFound), then ownership
// (ErrForbidden).
type ProjectService interface {
	Create(ctx context.Context, ownerID int64, form *models.ProjectForm) (*models.Project, error)
	ListForOwner(ctx context.Context, ownerID int64) ([]models.Project, error)
	GetForOwner(ctx context.Context, id, ownerID int64) (*models.Project, error)
	Update(ctx context.Context, id, ownerID int64, form *models.EditProjectForm) error
	Delete(ctx context.Context, id, ownerID int64) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

// Create inserts a project owned by ownerID. All four fields must be
// non-empty; a blank anywhere rejects the whole submission without writing.
func (s *projectService) Create(ctx context.Context, ownerID int64, form *models.ProjectForm) (*models.Project, error) {
	ctx, span := projectServiceTracer.Start(ctx, "ProjectService.Create")
	defer span.End()

	if form.Title == "" || form.Description == "" || form.TechUsed == "" || form.GithubLink == "" {
		return nil, ErrValidation
	}

	project := &models.Project{
		Title:       form.Title,
		Description: form.Description,
		TechUsed:    form.TechUsed,
		GithubLink:  form.GithubLink,
		UserID:      ownerID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListForOwner returns the owner's projects, newest first.
func (s *projectService) ListForOwner(ctx context.Context, ownerID int64) ([]models.Project, error) {
	ctx, span := projectServiceTracer.Start(ctx, "ProjectService.ListForOwner")
	defer span.End()

	return s.projectRepo.ListByOwner(ctx, ownerID)
}

// GetForOwner fetches one project with the same existence and ownership
// checks as a mutation; used to render the edit form.
func (s *projectService) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Project, error) {
	ctx, span := projectServiceTracer.Start(ctx, "ProjectService.GetForOwner")
	defer span.End()

	return s.getOwned(ctx, id, ownerID)
}

// Update overwrites all four mutable fields as submitted. Unlike Create,
// blanks are stored as-is.
func (s *projectService) Update(ctx context.Context, id, ownerID int64, form *models.EditProjectForm) error {
	ctx, span := projectServiceTracer.Start(ctx, "ProjectService.Update")
	defer span.End()

	project, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	project.Title = form.Title
	project.Description = form.Description
	project.TechUsed = form.TechUsed
	project.GithubLink = form.GithubLink
	return s.projectRepo.Update(ctx, project)
}

// Delete permanently removes a project after the usual checks.
func (s *projectService) Delete(ctx context.Context, id, ownerID int64) error {
	ctx, span := projectServiceTracer.Start(ctx, "ProjectService.Delete")
	defer span.End()

	if _, err := s.getOwned(ctx, id, ownerID); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}

func (s *projectService) getOwned(ctx context.Context, id, ownerID int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	if project.UserID != ownerID {
		return nil, ErrForbidden
	}
	return project, nil
}
