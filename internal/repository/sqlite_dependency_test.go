package repository

import (
	"context"
	"testing"

	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depTestSetup(t *testing.T) (context.Context, *SQLiteDependencyRepo, *domain.Initiative, *domain.Initiative) {
	t.Helper()
	db := testutil.NewTestDB(t)
	initRepo := NewSQLiteInitiativeRepo(db)
	ctx := context.Background()

	pred := testutil.NewTestInitiative("Data Migration")
	succ := testutil.NewTestInitiative("Go Live")
	require.NoError(t, initRepo.Create(ctx, pred))
	require.NoError(t, initRepo.Create(ctx, succ))

	return ctx, NewSQLiteDependencyRepo(db), pred, succ
}

func TestDependencyRepo_CreateAndList(t *testing.T) {
	ctx, repo, pred, succ := depTestSetup(t)

	dep := &domain.Dependency{
		PredecessorID: pred.ID,
		SuccessorID:   succ.ID,
		Type:          domain.FinishToStart,
		LagDays:       5,
	}
	require.NoError(t, repo.Create(ctx, dep))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pred.ID, list[0].PredecessorID)
	assert.Equal(t, succ.ID, list[0].SuccessorID)
	assert.Equal(t, domain.FinishToStart, list[0].Type)
	assert.Equal(t, 5, list[0].LagDays)
}

func TestDependencyRepo_DuplicateRejected(t *testing.T) {
	ctx, repo, pred, succ := depTestSetup(t)

	dep := &domain.Dependency{PredecessorID: pred.ID, SuccessorID: succ.ID, Type: domain.FinishToStart}
	require.NoError(t, repo.Create(ctx, dep))
	assert.Error(t, repo.Create(ctx, dep))
}

func TestDependencyRepo_UnknownInitiativeRejected(t *testing.T) {
	ctx, repo, pred, _ := depTestSetup(t)

	dep := &domain.Dependency{PredecessorID: pred.ID, SuccessorID: "ghost", Type: domain.FinishToStart}
	assert.Error(t, repo.Create(ctx, dep))
}

func TestDependencyRepo_ListPredecessorsAndSuccessors(t *testing.T) {
	ctx, repo, pred, succ := depTestSetup(t)

	dep := &domain.Dependency{PredecessorID: pred.ID, SuccessorID: succ.ID, Type: domain.StartToStart}
	require.NoError(t, repo.Create(ctx, dep))

	preds, err := repo.ListPredecessors(ctx, succ.ID)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, pred.ID, preds[0].PredecessorID)

	succs, err := repo.ListSuccessors(ctx, pred.ID)
	require.NoError(t, err)
	require.Len(t, succs, 1)
	assert.Equal(t, succ.ID, succs[0].SuccessorID)

	none, err := repo.ListPredecessors(ctx, pred.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDependencyRepo_Delete(t *testing.T) {
	ctx, repo, pred, succ := depTestSetup(t)

	dep := &domain.Dependency{PredecessorID: pred.ID, SuccessorID: succ.ID, Type: domain.FinishToStart}
	require.NoError(t, repo.Create(ctx, dep))
	require.NoError(t, repo.Delete(ctx, pred.ID, succ.ID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
