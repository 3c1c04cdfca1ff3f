package repository

import (
	"context"
	"testing"

	"codefolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOwner(t *testing.T, users UserRepository) int64 {
	t.Helper()
	owner, err := users.Create(context.Background(), "owner", "pw")
	require.NoError(t, err)
	return owner.ID
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	pool := newTestDB(t)
	ownerID := seedOwner(t, NewUserRepository(pool))
	repo := NewProjectRepository(pool)
	ctx := context.Background()

	project := &models.Project{
		Title:       "X",
		Description: "Y",
		TechUsed:    "Go",
		GithubLink:  "http://x",
		UserID:      ownerID,
	}
	require.NoError(t, repo.Create(ctx, project))
	assert.NotZero(t, project.ID)

	got, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "X", got.Title)
	assert.Equal(t, ownerID, got.UserID)
}

func TestProjectRepository_GetMissing(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	got, err := repo.GetByID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProjectRepository_ListByOwnerNewestFirst(t *testing.T) {
	pool := newTestDB(t)
	ownerID := seedOwner(t, NewUserRepository(pool))
	repo := NewProjectRepository(pool)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		p := &models.Project{Title: title, Description: "d", TechUsed: "t", GithubLink: "g", UserID: ownerID}
		require.NoError(t, repo.Create(ctx, p))
	}

	projects, err := repo.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, "third", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)
	assert.Equal(t, "first", projects[2].Title)
	assert.Greater(t, projects[0].ID, projects[1].ID)
	assert.Greater(t, projects[1].ID, projects[2].ID)
}

func TestProjectRepository_Update(t *testing.T) {
	pool := newTestDB(t)
	ownerID := seedOwner(t, NewUserRepository(pool))
	repo := NewProjectRepository(pool)
	ctx := context.Background()

	project := &models.Project{Title: "old", Description: "d", TechUsed: "t", GithubLink: "g", UserID: ownerID}
	require.NoError(t, repo.Create(ctx, project))

	project.Title = ""
	project.Description = "new desc"
	require.NoError(t, repo.Update(ctx, project))

	got, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "", got.Title, "blank values are stored as submitted")
	assert.Equal(t, "new desc", got.Description)
	assert.Equal(t, ownerID, got.UserID, "owner never changes on update")
}

func TestProjectRepository_Delete(t *testing.T) {
	pool := newTestDB(t)
	ownerID := seedOwner(t, NewUserRepository(pool))
	repo := NewProjectRepository(pool)
	ctx := context.Background()

	project := &models.Project{Title: "x", Description: "d", TechUsed: "t", GithubLink: "g", UserID: ownerID}
	require.NoError(t, repo.Create(ctx, project))

	require.NoError(t, repo.Delete(ctx, project.ID))

	got, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
