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

func initServiceSetup(t *testing.T) (context.Context, InitiativeService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return context.Background(), NewInitiativeService(repository.NewSQLiteInitiativeRepo(db))
}

func TestInitiativeService_Create_AssignsIDAndDefaults(t *testing.T) {
	ctx, svc := initServiceSetup(t)

	i := &domain.Initiative{Name: "Bare Minimum"}
	require.NoError(t, svc.Create(ctx, i))
	assert.NotEmpty(t, i.ID)

	fetched, err := svc.GetByID(ctx, i.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TypeProject, fetched.Type)
	assert.Equal(t, domain.StatusProposed, fetched.Status)
}

func TestInitiativeService_Create_RejectsHalfSchedule(t *testing.T) {
	ctx, svc := initServiceSetup(t)

	start := domain.Date(2025, 1, 1)
	i := &domain.Initiative{Name: "Half Dated", StartDate: &start}
	err := svc.Create(ctx, i)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both start and end dates")
}

func TestInitiativeService_Create_RejectsEndBeforeStart(t *testing.T) {
	ctx, svc := initServiceSetup(t)

	start := domain.Date(2025, 6, 1)
	end := domain.Date(2025, 1, 1)
	i := &domain.Initiative{Name: "Backwards", StartDate: &start, EndDate: &end}
	err := svc.Create(ctx, i)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")
}

func TestInitiativeService_Update_Validates(t *testing.T) {
	ctx, svc := initServiceSetup(t)

	i := testutil.NewTestInitiative("Valid",
		testutil.WithSchedule(domain.Date(2025, 1, 1), domain.Date(2025, 3, 31)))
	require.NoError(t, svc.Create(ctx, i))

	bad := domain.Date(2024, 1, 1)
	i.EndDate = &bad
	require.Error(t, svc.Update(ctx, i))
}

func TestInitiativeService_Delete_UnknownID(t *testing.T) {
	ctx, svc := initServiceSetup(t)
	assert.Error(t, svc.Delete(ctx, "ghost"))
}
