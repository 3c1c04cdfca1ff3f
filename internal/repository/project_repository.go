package repository

import (
	"context"
	"database/sql"
	"fmt"

	"codefolio/internal/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var projectTracer = otel.Tracer("repository.project")

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

type sqliteProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new SQLite-based ProjectRepository.
func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &sqliteProjectRepository{db: db}
}

// Create inserts a project and fills in its assigned id.
func (r *sqliteProjectRepository) Create(ctx context.Context, project *models.Project) error {
	ctx, span := projectTracer.Start(ctx, "ProjectRepository.Create")
	defer span.End()

	query := `INSERT INTO projects (title, description, tech_used, github_link, user_id)
	          VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		project.Title, project.Description, project.TechUsed, project.GithubLink, project.UserID)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new project id: %w", err)
	}
	project.ID = id
	return nil
}

// GetByID retrieves a project by id. A missing project is reported as
// (nil, nil), not as an error.
func (r *sqliteProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	ctx, span := projectTracer.Start(ctx, "ProjectRepository.GetByID")
	defer span.End()

	var project models.Project
	query := `SELECT id, title, description, tech_used, github_link, user_id FROM projects WHERE id = ?`
	err := r.db.GetContext(ctx, &project, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return &project, nil
}

// ListByOwner returns the owner's projects, newest first.
func (r *sqliteProjectRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Project, error) {
	ctx, span := projectTracer.Start(ctx, "ProjectRepository.ListByOwner")
	defer span.End()

	projects := []models.Project{}
	query := `SELECT id, title, description, tech_used, github_link, user_id
	          FROM projects WHERE user_id = ? ORDER BY id DESC`
	if err := r.db.SelectContext(ctx, &projects, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Update overwrites the four mutable fields; user_id is never touched.
func (r *sqliteProjectRepository) Update(ctx context.Context, project *models.Project) error {
	ctx, span := projectTracer.Start(ctx, "ProjectRepository.Update")
	defer span.End()

	query := `UPDATE projects SET title = ?, description = ?, tech_used = ?, github_link = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		project.Title, project.Description, project.TechUsed, project.GithubLink, project.ID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete permanently removes a project.
func (r *sqliteProjectRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := projectTracer.Start(ctx, "ProjectRepository.Delete")
	defer span.End()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
