package engine

import (
	"sort"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// overallSpan returns the min start / max end across all schedulable
// initiatives, or nil when nothing is dated.
func overallSpan(ctx *Context) *DateRange {
	var span *DateRange
	for i := range ctx.Initiatives {
		init := &ctx.Initiatives[i]
		if !init.Schedulable() {
			continue
		}
		if span == nil {
			span = &DateRange{*init.StartDate, *init.EndDate}
			continue
		}
		if init.StartDate.Before(span.Start) {
			span.Start = *init.StartDate
		}
		if init.EndDate.After(span.End) {
			span.End = *init.EndDate
		}
	}
	return span
}

// alignPeriodStart returns the first day of the calendar period containing t.
func alignPeriodStart(t time.Time, periodType domain.PeriodType) time.Time {
	switch periodType {
	case domain.PeriodQuarter:
		quarterMonth := time.Month((int(t.Month())-1)/3*3 + 1)
		return domain.Date(t.Year(), quarterMonth, 1)
	case domain.PeriodYear:
		return domain.Date(t.Year(), time.January, 1)
	default:
		return domain.Date(t.Year(), t.Month(), 1)
	}
}

func nextPeriodStart(start time.Time, periodType domain.PeriodType) time.Time {
	switch periodType {
	case domain.PeriodQuarter:
		return start.AddDate(0, 3, 0)
	case domain.PeriodYear:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// buildPeriods partitions the span into consecutive calendar-aligned periods,
// with the first and last clipped to the span.
func buildPeriods(span DateRange, periodType domain.PeriodType) []DateRange {
	var periods []DateRange
	for p := alignPeriodStart(span.Start, periodType); !p.After(span.End); p = nextPeriodStart(p, periodType) {
		period := DateRange{p, domain.AddDays(nextPeriodStart(p, periodType), -1)}
		if period.Start.Before(span.Start) {
			period.Start = span.Start
		}
		if period.End.After(span.End) {
			period.End = span.End
		}
		periods = append(periods, period)
	}
	return periods
}

// requirementDemand returns the effort a requirement contributes to one
// period. With an explicit period override the full effort lands in the
// period containing that date; otherwise the effort is spread evenly across
// the initiative's duration and weighted by the day overlap with the period.
// Cancelled or dangling initiatives contribute nothing either way.
func requirementDemand(req domain.ResourceRequirement, initiative *domain.Initiative, period DateRange) float64 {
	if initiative == nil || initiative.Status == domain.StatusCancelled {
		return 0
	}
	if req.PeriodStart != nil {
		if !req.PeriodStart.Before(period.Start) && !req.PeriodStart.After(period.End) {
			return req.EffortRequired
		}
		return 0
	}
	if !initiative.Schedulable() {
		return 0
	}
	durationDays := domain.DaysBetween(*initiative.StartDate, *initiative.EndDate)
	if durationDays == 0 {
		return 0
	}
	overlapStart := *initiative.StartDate
	if period.Start.After(overlapStart) {
		overlapStart = period.Start
	}
	overlapEnd := *initiative.EndDate
	if period.End.Before(overlapEnd) {
		overlapEnd = period.End
	}
	if overlapEnd.Before(overlapStart) {
		return 0
	}
	overlapDays := domain.DaysBetween(overlapStart, overlapEnd)
	return req.EffortRequired * float64(overlapDays) / float64(durationDays)
}

// Allocate builds the full per-pool, per-period allocation table across the
// span of all dated initiatives. Returns nil when nothing is scheduled.
func Allocate(ctx *Context, periodType domain.PeriodType) []Allocation {
	span := overallSpan(ctx)
	if span == nil {
		return nil
	}
	periods := buildPeriods(*span, periodType)

	var allocations []Allocation
	for i := range ctx.Pools {
		pool := &ctx.Pools[i]
		capacity := 0.0
		if pool.CapacityPerPeriod != nil {
			capacity = *pool.CapacityPerPeriod
		}
		for _, period := range periods {
			var demand float64
			for _, req := range ctx.Requirements {
				if req.PoolID != pool.ID {
					continue
				}
				demand += requirementDemand(req, ctx.initiativeByID(req.InitiativeID), period)
			}
			utilisation := 0.0
			if capacity > 0 {
				utilisation = demand / capacity * 100
			}
			allocations = append(allocations, Allocation{
				PoolID:             pool.ID,
				PoolName:           pool.Name,
				PeriodStart:        period.Start,
				PeriodEnd:          period.End,
				Demand:             demand,
				Capacity:           capacity,
				UtilisationPercent: utilisation,
			})
		}
	}
	return allocations
}

// Conflicts filters the allocation table down to over-allocated periods and
// attaches each conflict's contributor breakdown, sorted by descending effort
// share. Unconstrained pools never conflict.
func Conflicts(allocations []Allocation, ctx *Context) []Conflict {
	var conflicts []Conflict
	for _, a := range allocations {
		if a.Capacity <= 0 || a.Demand <= a.Capacity {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Allocation:     a,
			OverAllocation: a.Demand - a.Capacity,
			Contributors:   contributorsFor(a, ctx),
		})
	}
	return conflicts
}

func contributorsFor(a Allocation, ctx *Context) []Contribution {
	period := DateRange{a.PeriodStart, a.PeriodEnd}
	shares := make(map[string]float64)
	for _, req := range ctx.Requirements {
		if req.PoolID != a.PoolID {
			continue
		}
		effort := requirementDemand(req, ctx.initiativeByID(req.InitiativeID), period)
		if effort > 0 {
			shares[req.InitiativeID] += effort
		}
	}
	contributors := make([]Contribution, 0, len(shares))
	for id, effort := range shares {
		name := id
		if init := ctx.initiativeByID(id); init != nil {
			name = init.Name
		}
		contributors = append(contributors, Contribution{
			InitiativeID:   id,
			InitiativeName: name,
			Effort:         effort,
		})
	}
	sort.Slice(contributors, func(i, j int) bool {
		if contributors[i].Effort != contributors[j].Effort {
			return contributors[i].Effort > contributors[j].Effort
		}
		return contributors[i].InitiativeID < contributors[j].InitiativeID
	})
	return contributors
}

// HypotheticalMove recomputes the full allocation table with one initiative's
// dates substituted and diffs the conflict set by pool and period identity.
// This is a deliberate full recompute: input sets are roadmap-scale, not
// streaming-scale.
func HypotheticalMove(initiativeID string, newStart, newEnd time.Time, ctx *Context, periodType domain.PeriodType) (newConflicts, resolvedConflicts []Conflict) {
	before := Conflicts(Allocate(ctx, periodType), ctx)
	moved := ctx.withProposedDates(initiativeID, DateRange{newStart, newEnd})
	after := Conflicts(Allocate(&moved, periodType), &moved)

	beforeKeys := conflictKeys(before)
	afterKeys := conflictKeys(after)
	for _, c := range after {
		if !beforeKeys[conflictKey(c)] {
			newConflicts = append(newConflicts, c)
		}
	}
	for _, c := range before {
		if !afterKeys[conflictKey(c)] {
			resolvedConflicts = append(resolvedConflicts, c)
		}
	}
	return newConflicts, resolvedConflicts
}

func conflictKey(c Conflict) string {
	return c.PoolID + "|" + c.PeriodStart.Format(domain.DateLayout)
}

func conflictKeys(conflicts []Conflict) map[string]bool {
	keys := make(map[string]bool, len(conflicts))
	for _, c := range conflicts {
		keys[conflictKey(c)] = true
	}
	return keys
}
