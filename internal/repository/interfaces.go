package repository

import (
	"context"

	"github.com/jmcalloway/roadmap/internal/domain"
)

type InitiativeRepo interface {
	Create(ctx context.Context, i *domain.Initiative) error
	GetByID(ctx context.Context, id string) (*domain.Initiative, error)
	List(ctx context.Context) ([]domain.Initiative, error)
	ListByScenario(ctx context.Context, scenarioID string) ([]domain.Initiative, error)
	Update(ctx context.Context, i *domain.Initiative) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.Dependency) error
	Delete(ctx context.Context, predecessorID, successorID string) error
	List(ctx context.Context) ([]domain.Dependency, error)
	ListPredecessors(ctx context.Context, successorID string) ([]domain.Dependency, error)
	ListSuccessors(ctx context.Context, predecessorID string) ([]domain.Dependency, error)
}

type ConstraintRepo interface {
	Create(ctx context.Context, c *domain.Constraint) error
	GetByID(ctx context.Context, id string) (*domain.Constraint, error)
	List(ctx context.Context) ([]domain.Constraint, error)
	Update(ctx context.Context, c *domain.Constraint) error
	Delete(ctx context.Context, id string) error
	Link(ctx context.Context, initiativeID, constraintID string) error
	Unlink(ctx context.Context, initiativeID, constraintID string) error
	ListLinks(ctx context.Context) ([]domain.ConstraintLink, error)
}

type ResourceRepo interface {
	CreatePool(ctx context.Context, p *domain.ResourcePool) error
	GetPoolByID(ctx context.Context, id string) (*domain.ResourcePool, error)
	ListPools(ctx context.Context) ([]domain.ResourcePool, error)
	UpdatePool(ctx context.Context, p *domain.ResourcePool) error
	DeletePool(ctx context.Context, id string) error
	UpsertRequirement(ctx context.Context, r *domain.ResourceRequirement) error
	DeleteRequirement(ctx context.Context, initiativeID, poolID string) error
	ListRequirements(ctx context.Context) ([]domain.ResourceRequirement, error)
	CreateResource(ctx context.Context, r *domain.Resource) error
	ListResourcesByPool(ctx context.Context, poolID string) ([]domain.Resource, error)
	DeleteResource(ctx context.Context, id string) error
}

type ScenarioRepo interface {
	Create(ctx context.Context, s *domain.Scenario) error
	GetByID(ctx context.Context, id string) (*domain.Scenario, error)
	GetBaseline(ctx context.Context) (*domain.Scenario, error)
	List(ctx context.Context) ([]domain.Scenario, error)
	Update(ctx context.Context, s *domain.Scenario) error
	Delete(ctx context.Context, id string) error
}

type PortfolioRepo interface {
	CreateCapability(ctx context.Context, c *domain.Capability) error
	ListCapabilities(ctx context.Context) ([]domain.Capability, error)
	DeleteCapability(ctx context.Context, id string) error
	CreateSystem(ctx context.Context, s *domain.System) error
	ListSystems(ctx context.Context) ([]domain.System, error)
	ListSystemsByCapability(ctx context.Context, capabilityID string) ([]domain.System, error)
	DeleteSystem(ctx context.Context, id string) error
	CreateFinancialPeriod(ctx context.Context, p *domain.FinancialPeriod) error
	ListFinancialPeriods(ctx context.Context) ([]domain.FinancialPeriod, error)
	DeleteFinancialPeriod(ctx context.Context, id string) error
}
