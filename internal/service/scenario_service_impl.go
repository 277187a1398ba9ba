package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/repository"
)

type scenarioService struct {
	scenarios repository.ScenarioRepo
}

func NewScenarioService(scenarios repository.ScenarioRepo) ScenarioService {
	return &scenarioService{scenarios: scenarios}
}

func (s *scenarioService) Create(ctx context.Context, sc *domain.Scenario) error {
	if sc.ID == "" {
		sc.ID = uuid.New().String()
	}
	if sc.Type == "" {
		sc.Type = domain.ScenarioWhatIf
	}
	// Only one baseline at a time.
	if sc.IsBaseline {
		if existing, err := s.scenarios.GetBaseline(ctx); err == nil {
			return fmt.Errorf("baseline scenario already exists: %s", existing.Name)
		}
		sc.Type = domain.ScenarioBaseline
	}
	now := time.Now().UTC()
	sc.CreatedAt = now
	sc.UpdatedAt = now
	return s.scenarios.Create(ctx, sc)
}

func (s *scenarioService) List(ctx context.Context) ([]domain.Scenario, error) {
	return s.scenarios.List(ctx)
}

func (s *scenarioService) Delete(ctx context.Context, id string) error {
	sc, err := s.scenarios.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sc.IsBaseline {
		return fmt.Errorf("cannot delete the baseline scenario")
	}
	return s.scenarios.Delete(ctx, id)
}
