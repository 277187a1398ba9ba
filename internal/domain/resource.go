package domain

import "time"

type ResourcePool struct {
	ID                string
	Name              string
	Description       string
	CapacityPerPeriod *float64 // nil means unconstrained
	CapacityUnit      string
	PeriodType        PeriodType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ResourceRequirement links an initiative to a pool with the effort it draws.
// When PeriodStart is set the full effort lands in the period containing that
// date; otherwise the effort is spread evenly across the initiative's own
// date range.
type ResourceRequirement struct {
	InitiativeID   string
	PoolID         string
	EffortRequired float64
	PeriodStart    *time.Time
}

// Resource is a named member of a pool. It is managed by the CRUD layer and
// not consumed by the consequence engine, which works at pool granularity.
type Resource struct {
	ID           string
	Name         string
	Role         string
	PoolID       string
	Availability float64 // fraction of a full allocation, 1.0 = full time
	StartDate    *time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
