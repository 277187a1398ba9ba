package engine

import (
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DependencyViolation reports a temporal dependency that does not hold
// between a successor and one of its predecessors.
type DependencyViolation struct {
	SuccessorID     string
	SuccessorName   string
	PredecessorID   string
	PredecessorName string
	Type            domain.DependencyType
	LagDays         int
	Message         string
	// SuggestedFix is the minimal successor range that satisfies the rule
	// while preserving the successor's current duration. Nil when the
	// successor has no schedule to shift.
	SuggestedFix *DateRange
}

// ConstraintViolation reports an initiative whose dates fall outside a linked
// constraint's window.
type ConstraintViolation struct {
	InitiativeID   string
	InitiativeName string
	ConstraintID   string
	ConstraintName string
	Type           domain.ConstraintType
	Hardness       domain.Hardness
	Message        string
}

// Allocation is the computed demand against capacity for one pool in one
// period. Capacity is 0 for unconstrained pools, which never register
// utilisation but still record demand.
type Allocation struct {
	PoolID             string
	PoolName           string
	PeriodStart        time.Time
	PeriodEnd          time.Time
	Demand             float64
	Capacity           float64
	UtilisationPercent float64
}

// Contribution is one initiative's effort share within a conflicted period.
type Contribution struct {
	InitiativeID   string
	InitiativeName string
	Effort         float64
}

// Conflict is an allocation whose demand exceeds a finite capacity.
// Contributors are sorted by descending effort share.
type Conflict struct {
	Allocation
	OverAllocation float64
	Contributors   []Contribution
}
