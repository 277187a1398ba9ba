package engine

import (
	"testing"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// troubledContext builds a roadmap with one dependency violation (B starts
// before A finishes) and one hard constraint violation (B misses a deadline).
func troubledContext() *Context {
	a := dated("a", "Platform Rebuild", domain.Date(2025, time.January, 1), domain.Date(2025, time.March, 31))
	b := dated("b", "API Migration", domain.Date(2025, time.February, 1), domain.Date(2025, time.April, 30))
	due := domain.Date(2025, time.March, 31)
	return &Context{
		Initiatives: []domain.Initiative{a, b},
		Dependencies: []domain.Dependency{
			{PredecessorID: "a", SuccessorID: "b", Type: domain.FinishToStart},
		},
		Constraints: []domain.Constraint{
			{ID: "c-1", Name: "Q1 Cutoff", Type: domain.ConstraintDeadline,
				Hardness: domain.Hard, EffectiveDate: &due},
		},
		Links: []domain.ConstraintLink{{InitiativeID: "b", ConstraintID: "c-1"}},
	}
}

func TestEvaluateCurrentState_CleanRoadmap(t *testing.T) {
	ctx := &Context{
		Initiatives: []domain.Initiative{
			dated("a", "A", domain.Date(2025, time.January, 1), domain.Date(2025, time.January, 31)),
			dated("b", "B", domain.Date(2025, time.February, 1), domain.Date(2025, time.February, 28)),
		},
		Dependencies: []domain.Dependency{
			{PredecessorID: "a", SuccessorID: "b", Type: domain.FinishToStart},
		},
	}

	report := EvaluateCurrentState(ctx)

	assert.Zero(t, report.TotalIssues)
	assert.False(t, report.HasHardViolations)
	assert.False(t, report.HasSoftViolations)
	assert.False(t, report.HasResourceConflicts)
	assert.Equal(t, "No issues detected", report.Summary)
	require.NotNil(t, report.CascadingChanges)
	assert.Empty(t, report.CascadingChanges, "current-state reports never cascade")
}

func TestEvaluateCurrentState_CountsAndSummary(t *testing.T) {
	report := EvaluateCurrentState(troubledContext())

	assert.Len(t, report.DependencyViolations, 1)
	assert.Len(t, report.ConstraintViolations, 1)
	assert.True(t, report.HasHardViolations)
	assert.False(t, report.HasSoftViolations)
	assert.Equal(t, 2, report.TotalIssues)
	assert.Equal(t, "1 dependency violation, 1 hard constraint violation", report.Summary)
}

func TestEvaluateChange_NoOpMatchesCurrentState(t *testing.T) {
	ctx := troubledContext()
	b := ctx.initiativeByID("b")

	report := EvaluateChange("b", *b.StartDate, *b.EndDate, ctx)

	assert.Equal(t, DependencyViolationsFor(b, ctx), report.DependencyViolations)
	assert.Equal(t, ConstraintViolationsFor(b, ctx), report.ConstraintViolations)
	assert.Empty(t, report.ResourceConflicts)
	assert.Empty(t, report.CascadingChanges)
}

func TestEvaluateChange_ReportsCascade(t *testing.T) {
	ctx := &Context{
		Initiatives: []domain.Initiative{
			dated("a", "A", domain.Date(2025, time.January, 1), domain.Date(2025, time.January, 31)),
			dated("b", "B", domain.Date(2025, time.March, 1), domain.Date(2025, time.March, 31)),
		},
		Dependencies: []domain.Dependency{
			{PredecessorID: "a", SuccessorID: "b", Type: domain.FinishToStart},
		},
	}

	report := EvaluateChange("a", domain.Date(2025, time.April, 1), domain.Date(2025, time.April, 30), ctx)

	require.Contains(t, report.CascadingChanges, "b")
	assert.Equal(t, domain.Date(2025, time.May, 1), report.CascadingChanges["b"].Start)
	assert.Zero(t, report.TotalIssues, "cascading changes are informational, not issues")
	assert.Equal(t, "1 initiative would cascade", report.Summary)
}

func TestEvaluateChange_FixingViolationClearsReport(t *testing.T) {
	ctx := troubledContext()

	// Moving B past A's finish clears the dependency violation, but the
	// deadline is Mar 31 and A also ends Mar 31, so no slot satisfies both.
	report := EvaluateChange("b", domain.Date(2025, time.April, 1), domain.Date(2025, time.June, 28), ctx)

	assert.Empty(t, report.DependencyViolations)
	assert.Len(t, report.ConstraintViolations, 1, "deadline still breached")
	assert.Equal(t, 1, report.TotalIssues)
}

func TestEvaluateChange_ResourceConflictDiff(t *testing.T) {
	jan1 := domain.Date(2025, time.January, 1)
	jan31 := domain.Date(2025, time.January, 31)
	ctx := &Context{
		Initiatives: []domain.Initiative{
			dated("i-1", "First", jan1, jan31),
			dated("i-2", "Second", domain.Date(2025, time.February, 1), domain.Date(2025, time.February, 28)),
		},
		Pools: []domain.ResourcePool{capacityPool("p-1", "Team", 8, domain.PeriodMonth)},
		Requirements: []domain.ResourceRequirement{
			{InitiativeID: "i-1", PoolID: "p-1", EffortRequired: 5},
			{InitiativeID: "i-2", PoolID: "p-1", EffortRequired: 5},
		},
	}

	report := EvaluateChange("i-2", jan1, jan31, ctx)

	require.Len(t, report.ResourceConflicts, 1, "moving i-2 into January overloads the pool")
	assert.True(t, report.HasResourceConflicts)
	assert.Empty(t, report.ResolvedConflicts)
	assert.Equal(t, "1 resource conflict", report.Summary)
}

func TestViolationsForInitiative(t *testing.T) {
	ctx := troubledContext()
	march1 := domain.Date(2025, time.March, 1)
	ctx.Pools = []domain.ResourcePool{capacityPool("p-1", "Team", 1, domain.PeriodMonth)}
	ctx.Requirements = []domain.ResourceRequirement{
		{InitiativeID: "b", PoolID: "p-1", EffortRequired: 10, PeriodStart: &march1},
	}

	issues := ViolationsForInitiative("b", ctx)

	assert.Len(t, issues.Dependencies, 1)
	assert.Len(t, issues.Constraints, 1)
	require.Len(t, issues.Resources, 1)
	assert.Equal(t, "p-1", issues.Resources[0].PoolID)

	clean := ViolationsForInitiative("a", ctx)
	assert.Empty(t, clean.Dependencies)
	assert.Empty(t, clean.Constraints)
	assert.Empty(t, clean.Resources)
}

func TestCheckCycles(t *testing.T) {
	acyclic := []domain.Dependency{
		{PredecessorID: "a", SuccessorID: "b", Type: domain.FinishToStart},
	}
	report := CheckCycles(acyclic)
	assert.False(t, report.HasCycles)
	assert.Empty(t, report.Cycles)

	cyclic := append(acyclic, domain.Dependency{
		PredecessorID: "b", SuccessorID: "a", Type: domain.FinishToStart,
	})
	report = CheckCycles(cyclic)
	assert.True(t, report.HasCycles)
	require.Len(t, report.Cycles, 1)
}

func TestBuildSummary_Pluralization(t *testing.T) {
	assert.Equal(t, "No issues detected", buildSummary(0, 0, 0, 0, 0))
	assert.Equal(t, "1 dependency violation", buildSummary(1, 0, 0, 0, 0))
	assert.Equal(t,
		"2 dependency violations, 1 hard constraint violation, 3 initiatives would cascade",
		buildSummary(2, 1, 0, 0, 3))
	assert.Equal(t,
		"1 soft constraint violation, 2 resource conflicts",
		buildSummary(0, 0, 1, 2, 0))
}
