package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// Report is the combined result of running all analyzers over one context,
// either for the current state or for a hypothetical single-initiative move.
type Report struct {
	DependencyViolations []DependencyViolation
	ConstraintViolations []ConstraintViolation
	ResourceConflicts    []Conflict
	// ResolvedConflicts lists conflicts a hypothetical move would clear.
	// Informational, like CascadingChanges; empty on the current-state path.
	ResolvedConflicts    []Conflict
	CascadingChanges     map[string]DateRange
	HasHardViolations    bool
	HasSoftViolations    bool
	HasResourceConflicts bool
	// TotalIssues counts the three violation lists. Cascading changes and
	// resolved conflicts are informational and excluded.
	TotalIssues int
	Summary     string
}

// InitiativeIssues is the per-initiative violation lookup.
type InitiativeIssues struct {
	Dependencies []DependencyViolation
	Constraints  []ConstraintViolation
	Resources    []Conflict
}

// CycleReport is the advisory cycle-detection result. The engine never
// refuses to analyze a cyclic graph; handling policy belongs to the caller.
type CycleReport struct {
	HasCycles bool
	Cycles    [][]string
}

// EvaluateChange analyzes a hypothetical move of one initiative to the
// proposed dates: dependency and constraint violations the move would cause,
// resource conflicts it would introduce or resolve, and the cascading shifts
// required downstream. The context itself is never mutated.
func EvaluateChange(initiativeID string, newStart, newEnd time.Time, ctx *Context) Report {
	proposed := DateRange{newStart, newEnd}
	moved := ctx.withProposedDates(initiativeID, proposed)
	virtual := moved.initiativeByID(initiativeID)

	depViolations := DependencyViolationsFor(virtual, &moved)
	constraintViolations := HypotheticalConstraintViolations(ctx.initiativeByID(initiativeID), proposed, ctx)
	newConflicts, resolved := HypotheticalMove(initiativeID, newStart, newEnd, ctx, ctx.periodType())
	cascades := Cascade(initiativeID, newStart, newEnd, ctx)

	return assembleReport(depViolations, constraintViolations, newConflicts, resolved, cascades)
}

// EvaluateCurrentState analyzes every scheduled initiative as it stands. The
// cascade map is always empty: cascades only make sense as a reaction to a
// specific proposed move.
func EvaluateCurrentState(ctx *Context) Report {
	var depViolations []DependencyViolation
	var constraintViolations []ConstraintViolation
	for i := range ctx.Initiatives {
		initiative := &ctx.Initiatives[i]
		depViolations = append(depViolations, DependencyViolationsFor(initiative, ctx)...)
		constraintViolations = append(constraintViolations, ConstraintViolationsFor(initiative, ctx)...)
	}
	conflicts := Conflicts(Allocate(ctx, ctx.periodType()), ctx)

	return assembleReport(depViolations, constraintViolations, conflicts, nil, map[string]DateRange{})
}

// ViolationsForInitiative returns the violations touching one initiative:
// its own dependency and constraint violations, plus the resource conflicts
// it contributes demand to.
func ViolationsForInitiative(initiativeID string, ctx *Context) InitiativeIssues {
	initiative := ctx.initiativeByID(initiativeID)
	issues := InitiativeIssues{
		Dependencies: DependencyViolationsFor(initiative, ctx),
		Constraints:  ConstraintViolationsFor(initiative, ctx),
	}
	for _, c := range Conflicts(Allocate(ctx, ctx.periodType()), ctx) {
		for _, contrib := range c.Contributors {
			if contrib.InitiativeID == initiativeID {
				issues.Resources = append(issues.Resources, c)
				break
			}
		}
	}
	return issues
}

// CheckCycles runs cycle detection over the dependency graph.
func CheckCycles(dependencies []domain.Dependency) CycleReport {
	cycles := DetectCycles(dependencies)
	return CycleReport{HasCycles: len(cycles) > 0, Cycles: cycles}
}

func assembleReport(
	depViolations []DependencyViolation,
	constraintViolations []ConstraintViolation,
	conflicts []Conflict,
	resolved []Conflict,
	cascades map[string]DateRange,
) Report {
	hard, soft := Categorize(constraintViolations)
	return Report{
		DependencyViolations: depViolations,
		ConstraintViolations: constraintViolations,
		ResourceConflicts:    conflicts,
		ResolvedConflicts:    resolved,
		CascadingChanges:     cascades,
		HasHardViolations:    len(hard) > 0,
		HasSoftViolations:    len(soft) > 0,
		HasResourceConflicts: len(conflicts) > 0,
		TotalIssues:          len(depViolations) + len(constraintViolations) + len(conflicts),
		Summary:              buildSummary(len(depViolations), len(hard), len(soft), len(conflicts), len(cascades)),
	}
}

func buildSummary(deps, hard, soft, conflicts, cascades int) string {
	var parts []string
	if deps > 0 {
		parts = append(parts, fmt.Sprintf("%d dependency %s", deps, pluralize(deps, "violation")))
	}
	if hard > 0 {
		parts = append(parts, fmt.Sprintf("%d hard constraint %s", hard, pluralize(hard, "violation")))
	}
	if soft > 0 {
		parts = append(parts, fmt.Sprintf("%d soft constraint %s", soft, pluralize(soft, "violation")))
	}
	if conflicts > 0 {
		parts = append(parts, fmt.Sprintf("%d resource %s", conflicts, pluralize(conflicts, "conflict")))
	}
	if cascades > 0 {
		parts = append(parts, fmt.Sprintf("%d %s would cascade", cascades, pluralize(cascades, "initiative")))
	}
	if len(parts) == 0 {
		return "No issues detected"
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
