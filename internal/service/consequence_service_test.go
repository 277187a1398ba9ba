package service

import (
	"context"
	"testing"

	"github.com/jmcalloway/roadmap/internal/contract"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/repository"
	"github.com/jmcalloway/roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type consequenceFixture struct {
	ctx          context.Context
	initiatives  *repository.SQLiteInitiativeRepo
	dependencies *repository.SQLiteDependencyRepo
	constraints  *repository.SQLiteConstraintRepo
	resources    *repository.SQLiteResourceRepo
	scenarios    *repository.SQLiteScenarioRepo
	svc          ConsequenceService
}

func newConsequenceFixture(t *testing.T) *consequenceFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	f := &consequenceFixture{
		ctx:          context.Background(),
		initiatives:  repository.NewSQLiteInitiativeRepo(db),
		dependencies: repository.NewSQLiteDependencyRepo(db),
		constraints:  repository.NewSQLiteConstraintRepo(db),
		resources:    repository.NewSQLiteResourceRepo(db),
		scenarios:    repository.NewSQLiteScenarioRepo(db),
	}
	f.svc = NewConsequenceService(f.initiatives, f.dependencies, f.constraints, f.resources, f.scenarios)
	return f
}

func (f *consequenceFixture) addInitiative(t *testing.T, name string, opts ...testutil.InitiativeOption) *domain.Initiative {
	t.Helper()
	i := testutil.NewTestInitiative(name, opts...)
	require.NoError(t, f.initiatives.Create(f.ctx, i))
	return i
}

func TestConsequenceService_Evaluate_CleanPortfolio(t *testing.T) {
	f := newConsequenceFixture(t)

	f.addInitiative(t, "Platform", testutil.WithSchedule(domain.Date(2025, 1, 1), domain.Date(2025, 3, 31)))

	resp, err := f.svc.Evaluate(f.ctx, contract.NewEvaluateRequest())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Report.TotalIssues)
	assert.Equal(t, "No issues detected", resp.Report.Summary)
}

func TestConsequenceService_Evaluate_FindsDependencyViolation(t *testing.T) {
	f := newConsequenceFixture(t)

	pred := f.addInitiative(t, "Platform", testutil.WithSchedule(domain.Date(2025, 1, 1), domain.Date(2025, 3, 31)))
	succ := f.addInitiative(t, "Migration", testutil.WithSchedule(domain.Date(2025, 2, 1), domain.Date(2025, 4, 30)))
	require.NoError(t, f.dependencies.Create(f.ctx, &domain.Dependency{
		PredecessorID: pred.ID, SuccessorID: succ.ID, Type: domain.FinishToStart,
	}))

	resp, err := f.svc.Evaluate(f.ctx, contract.NewEvaluateRequest())
	require.NoError(t, err)
	require.Len(t, resp.Report.DependencyViolations, 1)
	v := resp.Report.DependencyViolations[0]
	assert.Equal(t, succ.ID, v.SuccessorID)
	assert.Equal(t, "Platform", v.PredecessorName)
	require.NotNil(t, v.SuggestedFix)
	assert.Equal(t, "2025-04-01", v.SuggestedFix.Start.Format(domain.DateLayout))
}

func TestConsequenceService_Evaluate_SingleInitiative(t *testing.T) {
	f := newConsequenceFixture(t)

	pred := f.addInitiative(t, "Platform", testutil.WithSchedule(domain.Date(2025, 1, 1), domain.Date(2025, 3, 31)))
	succ := f.addInitiative(t, "Migration", testutil.WithSchedule(domain.Date(2025, 2, 1), domain.Date(2025, 4, 30)))
	require.NoError(t, f.dependencies.Create(f.ctx, &domain.Dependency{
		PredecessorID: pred.ID, SuccessorID: succ.ID, Type: domain.FinishToStart,
	}))

	req := contract.NewEvaluateRequest()
	req.InitiativeID = succ.ID
	resp, err := f.svc.Evaluate(f.ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.Issues)
	assert.Len(t, resp.Issues.Dependencies, 1)

	// The predecessor itself violates nothing.
	req.InitiativeID = pred.ID
	resp, err = f.svc.Evaluate(f.ctx, req)
	require.NoError(t, err)
	assert.Empty(t, resp.Issues.Dependencies)
}

func TestConsequenceService_Evaluate_UnknownInitiative(t *testing.T) {
	f := newConsequenceFixture(t)

	req := contract.NewEvaluateRequest()
	req.InitiativeID = "ghost"
	_, err := f.svc.Evaluate(f.ctx, req)
	require.Error(t, err)
	var cErr *contract.ConsequenceError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, contract.ErrUnknownInitiative, cErr.Code)
}

func TestConsequenceService_Evaluate_ScopedToScenario(t *testing.T) {
	f := newConsequenceFixture(t)

	baseline := testutil.NewTestScenario("Current", testutil.AsBaseline())
	alt := testutil.NewTestScenario("Aggressive")
	require.NoError(t, f.scenarios.Create(f.ctx, baseline))
	require.NoError(t, f.scenarios.Create(f.ctx, alt))

	// The violating pair lives only in the alternative scenario.
	pred := f.addInitiative(t, "Platform",
		testutil.WithSchedule(domain.Date(2025, 1, 1), domain.Date(2025, 3, 31)),
		testutil.WithScenario(alt.ID))
	succ := f.addInitiative(t, "Migration",
		testutil.WithSchedule(domain.Date(2025, 2, 1), domain.Date(2025, 4, 30)),
		testutil.WithScenario(alt.ID))
	require.NoError(t, f.dependencies.Create(f.ctx, &domain.Dependency{
		PredecessorID: pred.ID, SuccessorID: succ.ID, Type: domain.FinishToStart,
	}))

	baselineResp, err := f.svc.Evaluate(f.ctx, contract.NewEvaluateRequest())
	require.NoError(t, err)
	assert.Equal(t, 0, baselineResp.Report.TotalIssues)

	altReq := contract.NewEvaluateRequest()
	altReq.ScenarioID = alt.ID
	altResp, err := f.svc.Evaluate(f.ctx, altReq)
	require.NoError(t, err)
	assert.Equal(t, 1, altResp.Report.TotalIssues)
}

func TestConsequenceService_Evaluate_UnknownScenario(t *testing.T) {
	f := newConsequenceFixture(t)

	req := contract.NewEvaluateRequest()
	req.ScenarioID = "ghost"
	_, err := f.svc.Evaluate(f.ctx, req)
	require.Error(t, err)
	var cErr *contract.ConsequenceError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, contract.ErrUnknownScenario, cErr.Code)
}

func TestConsequenceService_WhatIf_ReportsCascade(t *testing.T) {
	f := newConsequenceFixture(t)

	pred := f.addInitiative(t, "Platform", testutil.WithSchedule(domain.Date(2025, 1, 1), domain.Date(2025, 3, 31)))
	succ := f.addInitiative(t, "Migration", testutil.WithSchedule(domain.Date(2025, 4, 1), domain.Date(2025, 6, 30)))
	require.NoError(t, f.dependencies.Create(f.ctx, &domain.Dependency{
		PredecessorID: pred.ID, SuccessorID: succ.ID, Type: domain.FinishToStart,
	}))

	// Slip the platform two months; the migration must shift.
	req := contract.NewWhatIfRequest(pred.ID, domain.Date(2025, 3, 1), domain.Date(2025, 5, 31))
	resp, err := f.svc.WhatIf(f.ctx, req)
	require.NoError(t, err)
	require.Contains(t, resp.Report.CascadingChanges, succ.ID)
	shifted := resp.Report.CascadingChanges[succ.ID]
	assert.Equal(t, "2025-06-01", shifted.Start.Format(domain.DateLayout))
}

func TestConsequenceService_WhatIf_InvalidDates(t *testing.T) {
	f := newConsequenceFixture(t)
	init := f.addInitiative(t, "Platform", testutil.WithSchedule(domain.Date(2025, 1, 1), domain.Date(2025, 3, 31)))

	req := contract.NewWhatIfRequest(init.ID, domain.Date(2025, 6, 1), domain.Date(2025, 5, 1))
	_, err := f.svc.WhatIf(f.ctx, req)
	require.Error(t, err)
	var cErr *contract.ConsequenceError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, contract.ErrInvalidDates, cErr.Code)
}

func TestConsequenceService_WhatIf_UnknownInitiative(t *testing.T) {
	f := newConsequenceFixture(t)

	req := contract.NewWhatIfRequest("ghost", domain.Date(2025, 1, 1), domain.Date(2025, 2, 1))
	_, err := f.svc.WhatIf(f.ctx, req)
	require.Error(t, err)
	var cErr *contract.ConsequenceError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, contract.ErrUnknownInitiative, cErr.Code)
}

func TestConsequenceService_Allocations(t *testing.T) {
	f := newConsequenceFixture(t)

	pool := testutil.NewTestPool("Dev Team", testutil.WithCapacity(8))
	require.NoError(t, f.resources.CreatePool(f.ctx, pool))
	init := f.addInitiative(t, "CRM", testutil.WithSchedule(domain.Date(2025, 1, 1), domain.Date(2025, 1, 31)))
	require.NoError(t, f.resources.UpsertRequirement(f.ctx, &domain.ResourceRequirement{
		InitiativeID: init.ID, PoolID: pool.ID, EffortRequired: 10,
	}))

	resp, err := f.svc.Allocations(f.ctx, contract.AllocationRequest{Period: domain.PeriodMonth})
	require.NoError(t, err)
	require.Len(t, resp.Allocations, 1)
	assert.InDelta(t, 10, resp.Allocations[0].Demand, 1e-9)
	require.Len(t, resp.Conflicts, 1)
	assert.InDelta(t, 2, resp.Conflicts[0].OverAllocation, 1e-9)
}

func TestConsequenceService_Allocations_UnknownPool(t *testing.T) {
	f := newConsequenceFixture(t)

	_, err := f.svc.Allocations(f.ctx, contract.AllocationRequest{PoolID: "ghost"})
	require.Error(t, err)
	var cErr *contract.ConsequenceError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, contract.ErrUnknownPool, cErr.Code)
}

func TestConsequenceService_Cycles_NamesResolved(t *testing.T) {
	f := newConsequenceFixture(t)

	a := f.addInitiative(t, "Alpha")
	b := f.addInitiative(t, "Beta")
	require.NoError(t, f.dependencies.Create(f.ctx, &domain.Dependency{
		PredecessorID: a.ID, SuccessorID: b.ID, Type: domain.FinishToStart,
	}))
	require.NoError(t, f.dependencies.Create(f.ctx, &domain.Dependency{
		PredecessorID: b.ID, SuccessorID: a.ID, Type: domain.FinishToStart,
	}))

	resp, err := f.svc.Cycles(f.ctx)
	require.NoError(t, err)
	assert.True(t, resp.Report.HasCycles)
	assert.Equal(t, "Alpha", resp.Names[a.ID])
	assert.Equal(t, "Beta", resp.Names[b.ID])
}
