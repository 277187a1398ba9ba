package service

import (
	"context"
	"fmt"

	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/engine"
	"github.com/jmcalloway/roadmap/internal/repository"
)

type dependencyService struct {
	dependencies repository.DependencyRepo
	initiatives  repository.InitiativeRepo
}

func NewDependencyService(dependencies repository.DependencyRepo, initiatives repository.InitiativeRepo) DependencyService {
	return &dependencyService{dependencies: dependencies, initiatives: initiatives}
}

func (s *dependencyService) Add(ctx context.Context, d *domain.Dependency) error {
	if d.PredecessorID == d.SuccessorID {
		return fmt.Errorf("an initiative cannot depend on itself")
	}
	if d.Type == "" {
		d.Type = domain.FinishToStart
	}
	if !domain.ValidDependencyTypes[string(d.Type)] {
		return fmt.Errorf("invalid dependency type %q", d.Type)
	}
	if d.LagDays < 0 {
		return fmt.Errorf("lag days must not be negative")
	}
	if _, err := s.initiatives.GetByID(ctx, d.PredecessorID); err != nil {
		return fmt.Errorf("predecessor: %w", err)
	}
	if _, err := s.initiatives.GetByID(ctx, d.SuccessorID); err != nil {
		return fmt.Errorf("successor: %w", err)
	}

	// Adding the edge must not close a loop. The engine tolerates cyclic
	// graphs, but a loop is always a data-entry mistake at this boundary.
	existing, err := s.dependencies.List(ctx)
	if err != nil {
		return fmt.Errorf("listing dependencies: %w", err)
	}
	report := engine.CheckCycles(append(existing, *d))
	if report.HasCycles {
		return fmt.Errorf("dependency would create a cycle: %v", report.Cycles[0])
	}

	return s.dependencies.Create(ctx, d)
}

func (s *dependencyService) Remove(ctx context.Context, predecessorID, successorID string) error {
	return s.dependencies.Delete(ctx, predecessorID, successorID)
}

func (s *dependencyService) List(ctx context.Context) ([]domain.Dependency, error) {
	return s.dependencies.List(ctx)
}
