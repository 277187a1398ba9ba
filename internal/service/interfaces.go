package service

import (
	"context"

	"github.com/jmcalloway/roadmap/internal/contract"
	"github.com/jmcalloway/roadmap/internal/domain"
)

type InitiativeService interface {
	Create(ctx context.Context, i *domain.Initiative) error
	GetByID(ctx context.Context, id string) (*domain.Initiative, error)
	List(ctx context.Context) ([]domain.Initiative, error)
	Update(ctx context.Context, i *domain.Initiative) error
	Delete(ctx context.Context, id string) error
}

type DependencyService interface {
	Add(ctx context.Context, d *domain.Dependency) error
	Remove(ctx context.Context, predecessorID, successorID string) error
	List(ctx context.Context) ([]domain.Dependency, error)
}

type ConstraintService interface {
	Create(ctx context.Context, c *domain.Constraint) error
	GetByID(ctx context.Context, id string) (*domain.Constraint, error)
	List(ctx context.Context) ([]domain.Constraint, error)
	Update(ctx context.Context, c *domain.Constraint) error
	Delete(ctx context.Context, id string) error
	Link(ctx context.Context, initiativeID, constraintID string) error
	Unlink(ctx context.Context, initiativeID, constraintID string) error
}

type ResourceService interface {
	CreatePool(ctx context.Context, p *domain.ResourcePool) error
	ListPools(ctx context.Context) ([]domain.ResourcePool, error)
	DeletePool(ctx context.Context, id string) error
	AssignEffort(ctx context.Context, req *domain.ResourceRequirement) error
	UnassignEffort(ctx context.Context, initiativeID, poolID string) error
	AddResource(ctx context.Context, r *domain.Resource) error
	ListResources(ctx context.Context, poolID string) ([]domain.Resource, error)
}

type PortfolioService interface {
	CreateCapability(ctx context.Context, c *domain.Capability) error
	ListCapabilities(ctx context.Context) ([]domain.Capability, error)
	DeleteCapability(ctx context.Context, id string) error
	CreateSystem(ctx context.Context, s *domain.System) error
	ListSystems(ctx context.Context, capabilityID string) ([]domain.System, error)
	DeleteSystem(ctx context.Context, id string) error
	CreateFinancialPeriod(ctx context.Context, p *domain.FinancialPeriod) error
	ListFinancialPeriods(ctx context.Context) ([]domain.FinancialPeriod, error)
	DeleteFinancialPeriod(ctx context.Context, id string) error
}

type ScenarioService interface {
	Create(ctx context.Context, s *domain.Scenario) error
	List(ctx context.Context) ([]domain.Scenario, error)
	Delete(ctx context.Context, id string) error
}

// ConsequenceService runs the consequence engine over persisted data: full
// current-state evaluation, hypothetical what-if moves, allocation tables and
// dependency cycle detection.
type ConsequenceService interface {
	Evaluate(ctx context.Context, req contract.EvaluateRequest) (*contract.EvaluateResponse, error)
	WhatIf(ctx context.Context, req contract.WhatIfRequest) (*contract.WhatIfResponse, error)
	Allocations(ctx context.Context, req contract.AllocationRequest) (*contract.AllocationResponse, error)
	Cycles(ctx context.Context) (*contract.CyclesResponse, error)
}
