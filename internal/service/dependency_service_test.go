package service

import (
	"context"
	"testing"

	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/repository"
	"github.com/jmcalloway/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depServiceSetup(t *testing.T) (context.Context, DependencyService, *domain.Initiative, *domain.Initiative) {
	t.Helper()
	db := testutil.NewTestDB(t)
	initRepo := repository.NewSQLiteInitiativeRepo(db)
	depRepo := repository.NewSQLiteDependencyRepo(db)
	ctx := context.Background()

	a := testutil.NewTestInitiative("Alpha")
	b := testutil.NewTestInitiative("Beta")
	require.NoError(t, initRepo.Create(ctx, a))
	require.NoError(t, initRepo.Create(ctx, b))

	return ctx, NewDependencyService(depRepo, initRepo), a, b
}

func TestDependencyService_Add_DefaultsToFinishToStart(t *testing.T) {
	ctx, svc, a, b := depServiceSetup(t)

	require.NoError(t, svc.Add(ctx, &domain.Dependency{PredecessorID: a.ID, SuccessorID: b.ID}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.FinishToStart, list[0].Type)
}

func TestDependencyService_Add_RejectsSelfDependency(t *testing.T) {
	ctx, svc, a, _ := depServiceSetup(t)

	err := svc.Add(ctx, &domain.Dependency{PredecessorID: a.ID, SuccessorID: a.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depend on itself")
}

func TestDependencyService_Add_RejectsInvalidType(t *testing.T) {
	ctx, svc, a, b := depServiceSetup(t)

	err := svc.Add(ctx, &domain.Dependency{PredecessorID: a.ID, SuccessorID: b.ID, Type: "sideways"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dependency type")
}

func TestDependencyService_Add_RejectsNegativeLag(t *testing.T) {
	ctx, svc, a, b := depServiceSetup(t)

	err := svc.Add(ctx, &domain.Dependency{PredecessorID: a.ID, SuccessorID: b.ID, LagDays: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lag days")
}

func TestDependencyService_Add_RejectsCycle(t *testing.T) {
	ctx, svc, a, b := depServiceSetup(t)

	require.NoError(t, svc.Add(ctx, &domain.Dependency{PredecessorID: a.ID, SuccessorID: b.ID}))
	err := svc.Add(ctx, &domain.Dependency{PredecessorID: b.ID, SuccessorID: a.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestDependencyService_Remove(t *testing.T) {
	ctx, svc, a, b := depServiceSetup(t)

	require.NoError(t, svc.Add(ctx, &domain.Dependency{PredecessorID: a.ID, SuccessorID: b.ID}))
	require.NoError(t, svc.Remove(ctx, a.ID, b.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
