package repository

import (
	"context"
	"testing"

	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioRepo_CreateAndGetBaseline(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(db)
	ctx := context.Background()

	baseline := testutil.NewTestScenario("Current Plan", testutil.AsBaseline())
	whatIf := testutil.NewTestScenario("Aggressive Timeline")
	require.NoError(t, repo.Create(ctx, baseline))
	require.NoError(t, repo.Create(ctx, whatIf))

	fetched, err := repo.GetBaseline(ctx)
	require.NoError(t, err)
	assert.Equal(t, baseline.ID, fetched.ID)
	assert.True(t, fetched.IsBaseline)
	assert.Equal(t, domain.ScenarioBaseline, fetched.Type)
}

func TestScenarioRepo_GetBaseline_NoneDefined(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(db)
	ctx := context.Background()

	_, err := repo.GetBaseline(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no baseline")
}

func TestScenarioRepo_List_BaselineFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestScenario("Alt A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestScenario("Zero Budget", testutil.AsBaseline())))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Zero Budget", list[0].Name)
}

func TestScenarioRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(db)
	ctx := context.Background()

	s := testutil.NewTestScenario("Draft")
	require.NoError(t, repo.Create(ctx, s))

	s.Name = "Approved"
	s.Type = domain.ScenarioContingency
	require.NoError(t, repo.Update(ctx, s))

	fetched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Approved", fetched.Name)
	assert.Equal(t, domain.ScenarioContingency, fetched.Type)
}
