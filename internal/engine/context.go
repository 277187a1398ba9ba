package engine

import (
	"sort"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// Context is the read-only snapshot the engine analyzes. Callers load the
// collections (typically one scenario's worth) and pass the context by value
// semantics: the engine never mutates it, so a single context may be shared
// across concurrent calls as long as the caller does not mutate it mid-call.
type Context struct {
	Initiatives  []domain.Initiative
	Dependencies []domain.Dependency
	Constraints  []domain.Constraint
	Links        []domain.ConstraintLink
	Requirements []domain.ResourceRequirement
	Pools        []domain.ResourcePool

	// Period is the granularity for allocation tables. Defaults to monthly.
	Period domain.PeriodType
}

func (c *Context) periodType() domain.PeriodType {
	if c.Period == "" {
		return domain.PeriodMonth
	}
	return c.Period
}

// PeriodType returns the effective allocation granularity after defaulting.
func (c *Context) PeriodType() domain.PeriodType {
	return c.periodType()
}

// InitiativeByID is the exported lookup for callers assembling requests.
func (c *Context) InitiativeByID(id string) *domain.Initiative {
	return c.initiativeByID(id)
}

// initiativeByID returns the initiative with the given id, or nil. Dangling
// references resolve to nil and are treated as "cannot evaluate".
func (c *Context) initiativeByID(id string) *domain.Initiative {
	for i := range c.Initiatives {
		if c.Initiatives[i].ID == id {
			return &c.Initiatives[i]
		}
	}
	return nil
}

func (c *Context) poolByID(id string) *domain.ResourcePool {
	for i := range c.Pools {
		if c.Pools[i].ID == id {
			return &c.Pools[i]
		}
	}
	return nil
}

// successorsOf returns the dependency edges leaving predecessorID, sorted by
// successor id so every graph walk is deterministic.
func (c *Context) successorsOf(predecessorID string) []domain.Dependency {
	var out []domain.Dependency
	for _, d := range c.Dependencies {
		if d.PredecessorID == predecessorID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SuccessorID < out[j].SuccessorID })
	return out
}

// predecessorsOf returns the dependency edges arriving at successorID.
func (c *Context) predecessorsOf(successorID string) []domain.Dependency {
	var out []domain.Dependency
	for _, d := range c.Dependencies {
		if d.SuccessorID == successorID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PredecessorID < out[j].PredecessorID })
	return out
}

// constraintsFor returns the constraints linked to the initiative. Links to
// unknown constraints are skipped.
func (c *Context) constraintsFor(initiativeID string) []domain.Constraint {
	var out []domain.Constraint
	for _, l := range c.Links {
		if l.InitiativeID != initiativeID {
			continue
		}
		for i := range c.Constraints {
			if c.Constraints[i].ID == l.ConstraintID {
				out = append(out, c.Constraints[i])
				break
			}
		}
	}
	return out
}

// withProposedDates returns a copy of the context in which one initiative
// carries the proposed dates. Used by the hypothetical evaluation paths.
func (c *Context) withProposedDates(initiativeID string, r DateRange) Context {
	out := *c
	out.Initiatives = make([]domain.Initiative, len(c.Initiatives))
	copy(out.Initiatives, c.Initiatives)
	for i := range out.Initiatives {
		if out.Initiatives[i].ID == initiativeID {
			start, end := r.Start, r.End
			out.Initiatives[i].StartDate = &start
			out.Initiatives[i].EndDate = &end
		}
	}
	return out
}
