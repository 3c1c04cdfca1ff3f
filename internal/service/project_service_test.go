package service

import (
	"context"
	"testing"

	"codefolio/internal/models"
	"codefolio/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectFixture struct {
	projects ProjectService
	aliceID  int64
	bobID    int64
}

func newProjectFixture(t *testing.T) (*projectFixture, *sqlx.DB) {
	t.Helper()
	pool := newTestDB(t)
	users := repository.NewUserRepository(pool)
	ctx := context.Background()

	alice, err := users.Create(ctx, "alice", "pw")
	require.NoError(t, err)
	bob, err := users.Create(ctx, "bob", "pw")
	require.NoError(t, err)

	return &projectFixture{
		projects: NewProjectService(repository.NewProjectRepository(pool)),
		aliceID:  alice.ID,
		bobID:    bob.ID,
	}, pool
}

func validForm() *models.ProjectForm {
	return &models.ProjectForm{
		Title:       "X",
		Description: "Y",
		TechUsed:    "Go",
		GithubLink:  "http://x",
	}
}

func TestProjectService_Create(t *testing.T) {
	f, _ := newProjectFixture(t)
	ctx := context.Background()

	project, err := f.projects.Create(ctx, f.aliceID, validForm())
	require.NoError(t, err)
	assert.NotZero(t, project.ID)
	assert.Equal(t, f.aliceID, project.UserID)
}

func TestProjectService_CreateRejectsBlankFields(t *testing.T) {
	f, pool := newProjectFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.ProjectForm)
	}{
		{"empty title", func(fm *models.ProjectForm) { fm.Title = "" }},
		{"empty description", func(fm *models.ProjectForm) { fm.Description = "" }},
		{"empty tech", func(fm *models.ProjectForm) { fm.TechUsed = "" }},
		{"empty link", func(fm *models.ProjectForm) { fm.GithubLink = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)
			_, err := f.projects.Create(ctx, f.aliceID, form)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	var count int
	require.NoError(t, pool.Get(&count, `SELECT COUNT(*) FROM projects`))
	assert.Zero(t, count, "rejected submissions must not write")
}

func TestProjectService_OwnershipChecks(t *testing.T) {
	f, _ := newProjectFixture(t)
	ctx := context.Background()

	project, err := f.projects.Create(ctx, f.aliceID, validForm())
	require.NoError(t, err)

	edit := &models.EditProjectForm{Title: "new", Description: "d", TechUsed: "t", GithubLink: "g"}

	// Bob can neither see, edit nor delete Alice's project.
	_, err = f.projects.GetForOwner(ctx, project.ID, f.bobID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.projects.Update(ctx, project.ID, f.bobID, edit), ErrForbidden)
	assert.ErrorIs(t, f.projects.Delete(ctx, project.ID, f.bobID), ErrForbidden)

	// Alice can.
	require.NoError(t, f.projects.Update(ctx, project.ID, f.aliceID, edit))
	require.NoError(t, f.projects.Delete(ctx, project.ID, f.aliceID))
}

func TestProjectService_UnknownProjectIsNotFound(t *testing.T) {
	f, _ := newProjectFixture(t)
	ctx := context.Background()

	edit := &models.EditProjectForm{Title: "t"}

	_, err := f.projects.GetForOwner(ctx, 999, f.aliceID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.projects.Update(ctx, 999, f.aliceID, edit), ErrNotFound)
	assert.ErrorIs(t, f.projects.Delete(ctx, 999, f.aliceID), ErrNotFound)
}

func TestProjectService_UpdateStoresBlankTitle(t *testing.T) {
	f, _ := newProjectFixture(t)
	ctx := context.Background()

	project, err := f.projects.Create(ctx, f.aliceID, validForm())
	require.NoError(t, err)

	// Edit performs no blank-field validation; the empty title is stored.
	edit := &models.EditProjectForm{Title: "", Description: "Y", TechUsed: "Go", GithubLink: "http://x"}
	require.NoError(t, f.projects.Update(ctx, project.ID, f.aliceID, edit))

	got, err := f.projects.GetForOwner(ctx, project.ID, f.aliceID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Title)
}

func TestProjectService_ListForOwnerNewestFirst(t *testing.T) {
	f, _ := newProjectFixture(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		form := validForm()
		form.Title = title
		_, err := f.projects.Create(ctx, f.aliceID, form)
		require.NoError(t, err)
	}
	_, err := f.projects.Create(ctx, f.bobID, validForm())
	require.NoError(t, err)

	projects, err := f.projects.ListForOwner(ctx, f.aliceID)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "three", projects[0].Title)
	assert.Equal(t, "two", projects[1].Title)
	assert.Equal(t, "one", projects[2].Title)
}
