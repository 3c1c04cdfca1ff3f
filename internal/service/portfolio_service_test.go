package service

import (
	"context"
	"testing"

	"codefolio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioService(t *testing.T) (PortfolioService, ProjectService, UserService) {
	t.Helper()
	pool := newTestDB(t)
	users := repository.NewUserRepository(pool)
	projects := repository.NewProjectRepository(pool)
	return NewPortfolioService(users, projects), NewProjectService(projects), NewUserService(users)
}

func TestPortfolioService_Profile(t *testing.T) {
	portfolio, projects, users := newPortfolioService(t)
	ctx := context.Background()

	alice, err := users.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = projects.Create(ctx, alice.ID, validForm())
	require.NoError(t, err)

	owner, list, err := portfolio.Profile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", owner.Username)
	require.Len(t, list, 1)
	assert.Equal(t, "X", list[0].Title)
}

func TestPortfolioService_ProfileEmptyPortfolio(t *testing.T) {
	portfolio, _, users := newPortfolioService(t)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	owner, list, err := portfolio.Profile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", owner.Username)
	assert.Empty(t, list)
}

func TestPortfolioService_ProfileUnknownUser(t *testing.T) {
	portfolio, _, _ := newPortfolioService(t)

	_, _, err := portfolio.Profile(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortfolioService_SearchEmptyQuery(t *testing.T) {
	portfolio, _, users := newPortfolioService(t)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	results, err := portfolio.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPortfolioService_SearchSubstring(t *testing.T) {
	portfolio, _, users := newPortfolioService(t)
	ctx := context.Background()

	for _, name := range []string{"Ann", "anna", "SusANNa", "bob"} {
		_, err := users.Register(ctx, name, "pw")
		require.NoError(t, err)
	}

	results, err := portfolio.Search(ctx, "ann")
	require.NoError(t, err)

	names := make([]string, 0, len(results))
	for _, u := range results {
		names = append(names, u.Username)
	}
	assert.ElementsMatch(t, []string{"Ann", "anna", "SusANNa"}, names)
}
