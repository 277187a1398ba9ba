package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// IsSatisfied reports whether dep holds between successor and predecessor.
// Pairs where either side is unscheduled (or cancelled) are vacuously
// satisfied: scheduling checks apply only to dated initiatives.
func IsSatisfied(successor, predecessor *domain.Initiative, dep domain.Dependency) bool {
	if successor == nil || predecessor == nil {
		return true
	}
	if !successor.Schedulable() || !predecessor.Schedulable() {
		return true
	}
	return satisfiedRange(
		DateRange{*successor.StartDate, *successor.EndDate},
		DateRange{*predecessor.StartDate, *predecessor.EndDate},
		dep,
	)
}

func satisfiedRange(successor, predecessor DateRange, dep domain.Dependency) bool {
	switch dep.Type {
	case domain.FinishToStart:
		// The successor starts no earlier than the day after the
		// predecessor finishes, plus lag.
		return !successor.Start.Before(domain.AddDays(predecessor.End, dep.LagDays+1))
	case domain.StartToStart:
		return !successor.Start.Before(domain.AddDays(predecessor.Start, dep.LagDays))
	case domain.FinishToFinish:
		return !successor.End.Before(domain.AddDays(predecessor.End, dep.LagDays))
	case domain.StartToFinish:
		return !successor.End.Before(domain.AddDays(predecessor.Start, dep.LagDays))
	default:
		return true
	}
}

// requiredRange solves the dependency rule for equality: the earliest
// successor range that satisfies dep against the predecessor's dates while
// preserving the successor's current duration.
func requiredRange(successor, predecessor DateRange, dep domain.Dependency) DateRange {
	span := successor.End.Sub(successor.Start)
	switch dep.Type {
	case domain.FinishToStart:
		start := domain.AddDays(predecessor.End, dep.LagDays+1)
		return DateRange{start, start.Add(span)}
	case domain.StartToStart:
		start := domain.AddDays(predecessor.Start, dep.LagDays)
		return DateRange{start, start.Add(span)}
	case domain.FinishToFinish:
		end := domain.AddDays(predecessor.End, dep.LagDays)
		return DateRange{end.Add(-span), end}
	case domain.StartToFinish:
		end := domain.AddDays(predecessor.Start, dep.LagDays)
		return DateRange{end.Add(-span), end}
	default:
		return successor
	}
}

func violationMessage(successor, predecessor *domain.Initiative, dep domain.Dependency) string {
	var msg string
	switch dep.Type {
	case domain.FinishToStart:
		msg = fmt.Sprintf("%s starts before %s finishes", successor.Name, predecessor.Name)
	case domain.StartToStart:
		msg = fmt.Sprintf("%s starts before %s starts", successor.Name, predecessor.Name)
	case domain.FinishToFinish:
		msg = fmt.Sprintf("%s finishes before %s finishes", successor.Name, predecessor.Name)
	case domain.StartToFinish:
		msg = fmt.Sprintf("%s finishes before %s starts", successor.Name, predecessor.Name)
	default:
		msg = fmt.Sprintf("%s violates a dependency on %s", successor.Name, predecessor.Name)
	}
	if dep.LagDays > 0 {
		msg += fmt.Sprintf(" (requires %d day lag)", dep.LagDays)
	}
	return msg
}

// DependencyViolationsFor evaluates every dependency in which the initiative
// is the successor. Dangling predecessor references are skipped.
func DependencyViolationsFor(initiative *domain.Initiative, ctx *Context) []DependencyViolation {
	var violations []DependencyViolation
	if initiative == nil || !initiative.Schedulable() {
		return violations
	}
	for _, dep := range ctx.predecessorsOf(initiative.ID) {
		predecessor := ctx.initiativeByID(dep.PredecessorID)
		if predecessor == nil || IsSatisfied(initiative, predecessor, dep) {
			continue
		}
		fix := requiredRange(
			DateRange{*initiative.StartDate, *initiative.EndDate},
			DateRange{*predecessor.StartDate, *predecessor.EndDate},
			dep,
		)
		violations = append(violations, DependencyViolation{
			SuccessorID:     initiative.ID,
			SuccessorName:   initiative.Name,
			PredecessorID:   predecessor.ID,
			PredecessorName: predecessor.Name,
			Type:            dep.Type,
			LagDays:         dep.LagDays,
			Message:         violationMessage(initiative, predecessor, dep),
			SuggestedFix:    &fix,
		})
	}
	return violations
}

// Cascade computes the date shifts required to keep successors consistent
// when one initiative moves to the proposed range. It walks outgoing
// dependencies transitively, shifting each violated successor to the tightest
// satisfying range (duration preserved) and recursing from the shifted dates.
//
// A visited set bounds the walk so cyclic graphs terminate. When two paths
// disagree on a node's required dates, the later start wins (the more
// constraining shift); the node is not re-descended after its first visit.
// The moved initiative itself is never included in the result.
func Cascade(initiativeID string, newStart, newEnd time.Time, ctx *Context) map[string]DateRange {
	changes := make(map[string]DateRange)
	visited := map[string]bool{initiativeID: true}

	var walk func(predecessorID string, predecessor DateRange)
	walk = func(predecessorID string, predecessor DateRange) {
		for _, dep := range ctx.successorsOf(predecessorID) {
			if dep.SuccessorID == initiativeID {
				continue
			}
			successor := ctx.initiativeByID(dep.SuccessorID)
			if successor == nil || !successor.Schedulable() {
				continue
			}
			current := DateRange{*successor.StartDate, *successor.EndDate}
			if proposed, ok := changes[dep.SuccessorID]; ok {
				current = proposed
			}
			if satisfiedRange(current, predecessor, dep) {
				continue
			}
			required := requiredRange(current, predecessor, dep)
			if existing, ok := changes[dep.SuccessorID]; ok && existing.Start.After(required.Start) {
				required = existing
			}
			changes[dep.SuccessorID] = required
			if !visited[dep.SuccessorID] {
				visited[dep.SuccessorID] = true
				walk(dep.SuccessorID, required)
			}
		}
	}

	walk(initiativeID, DateRange{newStart, newEnd})
	return changes
}

// DetectCycles finds all dependency cycles. Each cycle is reported as the
// ordered list of ids from the repeated node back to itself inclusive. The
// walk covers only nodes that appear in at least one dependency edge.
func DetectCycles(dependencies []domain.Dependency) [][]string {
	adjacency := make(map[string][]string)
	nodeSet := make(map[string]bool)
	for _, d := range dependencies {
		adjacency[d.PredecessorID] = append(adjacency[d.PredecessorID], d.SuccessorID)
		nodeSet[d.PredecessorID] = true
		nodeSet[d.SuccessorID] = true
	}
	nodes := make([]string, 0, len(nodeSet))
	for n := range nodeSet {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	for n := range adjacency {
		sort.Strings(adjacency[n])
	}

	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	state := make(map[string]int)
	var stack []string
	var cycles [][]string

	var dfs func(n string)
	dfs = func(n string) {
		state[n] = onStack
		stack = append(stack, n)
		for _, m := range adjacency[n] {
			switch state[m] {
			case unvisited:
				dfs(m)
			case onStack:
				// Back edge: the cycle runs from m's position on the
				// stack through n and back to m.
				for i, s := range stack {
					if s == m {
						cycle := make([]string, 0, len(stack)-i+1)
						cycle = append(cycle, stack[i:]...)
						cycle = append(cycle, m)
						cycles = append(cycles, cycle)
						break
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[n] = done
	}

	for _, n := range nodes {
		if state[n] == unvisited {
			dfs(n)
		}
	}
	return cycles
}
