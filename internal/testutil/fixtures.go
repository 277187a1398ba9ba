package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmcalloway/roadmap/internal/domain"
)

// Initiative options
type InitiativeOption func(*domain.Initiative)

func WithSchedule(start, end time.Time) InitiativeOption {
	return func(i *domain.Initiative) {
		i.StartDate = &start
		i.EndDate = &end
	}
}

func WithStatus(s domain.InitiativeStatus) InitiativeOption {
	return func(i *domain.Initiative) {
		i.Status = s
	}
}

func WithType(t domain.InitiativeType) InitiativeOption {
	return func(i *domain.Initiative) {
		i.Type = t
	}
}

func WithEffort(days float64) InitiativeOption {
	return func(i *domain.Initiative) {
		i.EffortEstimate = &days
	}
}

func WithScenario(scenarioID string) InitiativeOption {
	return func(i *domain.Initiative) {
		i.ScenarioID = scenarioID
	}
}

func WithPriority(p int) InitiativeOption {
	return func(i *domain.Initiative) {
		i.Priority = p
	}
}

func NewTestInitiative(name string, opts ...InitiativeOption) *domain.Initiative {
	now := time.Now().UTC()
	i := &domain.Initiative{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      domain.TypeProject,
		Status:    domain.StatusPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Constraint options
type ConstraintOption func(*domain.Constraint)

func WithHardness(h domain.Hardness) ConstraintOption {
	return func(c *domain.Constraint) {
		c.Hardness = h
	}
}

func WithConstraintType(t domain.ConstraintType) ConstraintOption {
	return func(c *domain.Constraint) {
		c.Type = t
	}
}

func WithEffectiveDate(d time.Time) ConstraintOption {
	return func(c *domain.Constraint) {
		c.EffectiveDate = &d
	}
}

func WithExpiryDate(d time.Time) ConstraintOption {
	return func(c *domain.Constraint) {
		c.ExpiryDate = &d
	}
}

func NewTestConstraint(name string, opts ...ConstraintOption) *domain.Constraint {
	now := time.Now().UTC()
	c := &domain.Constraint{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      domain.ConstraintDeadline,
		Hardness:  domain.Hard,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResourcePool options
type PoolOption func(*domain.ResourcePool)

func WithCapacity(perPeriod float64) PoolOption {
	return func(p *domain.ResourcePool) {
		p.CapacityPerPeriod = &perPeriod
	}
}

func WithPoolPeriod(t domain.PeriodType) PoolOption {
	return func(p *domain.ResourcePool) {
		p.PeriodType = t
	}
}

func NewTestPool(name string, opts ...PoolOption) *domain.ResourcePool {
	now := time.Now().UTC()
	p := &domain.ResourcePool{
		ID:           uuid.New().String(),
		Name:         name,
		CapacityUnit: "person-days",
		PeriodType:   domain.PeriodMonth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resource options
type ResourceOption func(*domain.Resource)

func WithAvailability(fraction float64) ResourceOption {
	return func(r *domain.Resource) {
		r.Availability = fraction
	}
}

func NewTestResource(name, poolID string, opts ...ResourceOption) *domain.Resource {
	now := time.Now().UTC()
	r := &domain.Resource{
		ID:           uuid.New().String(),
		Name:         name,
		PoolID:       poolID,
		Availability: 1.0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewTestScenario(name string, opts ...func(*domain.Scenario)) *domain.Scenario {
	now := time.Now().UTC()
	s := &domain.Scenario{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      domain.ScenarioWhatIf,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func AsBaseline() func(*domain.Scenario) {
	return func(s *domain.Scenario) {
		s.Type = domain.ScenarioBaseline
		s.IsBaseline = true
	}
}
