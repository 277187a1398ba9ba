package repository

import (
	"context"
	"testing"

	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConstraintRepo(db)
	ctx := context.Background()

	c := testutil.NewTestConstraint("SOC2 Audit",
		testutil.WithConstraintType(domain.ConstraintCompliance),
		testutil.WithEffectiveDate(domain.Date(2025, 3, 31)),
	)
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "SOC2 Audit", fetched.Name)
	assert.Equal(t, domain.ConstraintCompliance, fetched.Type)
	assert.Equal(t, domain.Hard, fetched.Hardness)
	require.NotNil(t, fetched.EffectiveDate)
	assert.Equal(t, "2025-03-31", fetched.EffectiveDate.Format(domain.DateLayout))
	assert.Nil(t, fetched.ExpiryDate)
}

func TestConstraintRepo_UpdateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConstraintRepo(db)
	ctx := context.Background()

	c := testutil.NewTestConstraint("Budget Freeze", testutil.WithHardness(domain.Soft))
	require.NoError(t, repo.Create(ctx, c))

	c.Hardness = domain.Hard
	expiry := domain.Date(2025, 12, 31)
	c.ExpiryDate = &expiry
	require.NoError(t, repo.Update(ctx, c))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.Hard, list[0].Hardness)
	require.NotNil(t, list[0].ExpiryDate)
	assert.Equal(t, "2025-12-31", list[0].ExpiryDate.Format(domain.DateLayout))
}

func TestConstraintRepo_LinkLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConstraintRepo(db)
	initRepo := NewSQLiteInitiativeRepo(db)
	ctx := context.Background()

	init := testutil.NewTestInitiative("Compliance Upgrade")
	require.NoError(t, initRepo.Create(ctx, init))
	c := testutil.NewTestConstraint("Deadline")
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.Link(ctx, init.ID, c.ID))

	links, err := repo.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, init.ID, links[0].InitiativeID)
	assert.Equal(t, c.ID, links[0].ConstraintID)

	require.NoError(t, repo.Unlink(ctx, init.ID, c.ID))
	links, err = repo.ListLinks(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestConstraintRepo_LinkToUnknownInitiative(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConstraintRepo(db)
	ctx := context.Background()

	c := testutil.NewTestConstraint("Orphan")
	require.NoError(t, repo.Create(ctx, c))
	assert.Error(t, repo.Link(ctx, "ghost", c.ID))
}

func TestConstraintRepo_DeleteCascadesLinks(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConstraintRepo(db)
	initRepo := NewSQLiteInitiativeRepo(db)
	ctx := context.Background()

	init := testutil.NewTestInitiative("Linked")
	require.NoError(t, initRepo.Create(ctx, init))
	c := testutil.NewTestConstraint("Short-lived")
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Link(ctx, init.ID, c.ID))

	require.NoError(t, repo.Delete(ctx, c.ID))

	links, err := repo.ListLinks(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)
}
