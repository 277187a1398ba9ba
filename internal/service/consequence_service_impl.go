package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmcalloway/roadmap/internal/contract"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/engine"
	"github.com/jmcalloway/roadmap/internal/repository"
)

type consequenceService struct {
	initiatives  repository.InitiativeRepo
	dependencies repository.DependencyRepo
	constraints  repository.ConstraintRepo
	resources    repository.ResourceRepo
	scenarios    repository.ScenarioRepo
	observer     UseCaseObserver
}

func NewConsequenceService(
	initiatives repository.InitiativeRepo,
	dependencies repository.DependencyRepo,
	constraints repository.ConstraintRepo,
	resources repository.ResourceRepo,
	scenarios repository.ScenarioRepo,
	observers ...UseCaseObserver,
) ConsequenceService {
	return &consequenceService{
		initiatives:  initiatives,
		dependencies: dependencies,
		constraints:  constraints,
		resources:    resources,
		scenarios:    scenarios,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// loadSnapshot assembles the engine context for one scenario. An empty
// scenarioID resolves to the baseline when one exists, otherwise the whole
// portfolio. Initiatives without a scenario belong to every scenario.
func (s *consequenceService) loadSnapshot(ctx context.Context, scenarioID string, period domain.PeriodType) (*engine.Context, error) {
	if scenarioID == "" {
		if baseline, err := s.scenarios.GetBaseline(ctx); err == nil {
			scenarioID = baseline.ID
		}
	} else if _, err := s.scenarios.GetByID(ctx, scenarioID); err != nil {
		return nil, contract.NewConsequenceError(contract.ErrUnknownScenario, "scenario %s: %v", scenarioID, err)
	}

	all, err := s.initiatives.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading initiatives: %w", err)
	}
	var initiatives []domain.Initiative
	for _, i := range all {
		if scenarioID == "" || i.ScenarioID == "" || i.ScenarioID == scenarioID {
			initiatives = append(initiatives, i)
		}
	}

	dependencies, err := s.dependencies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dependencies: %w", err)
	}
	constraints, err := s.constraints.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading constraints: %w", err)
	}
	links, err := s.constraints.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading constraint links: %w", err)
	}
	requirements, err := s.resources.ListRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading resource requirements: %w", err)
	}
	pools, err := s.resources.ListPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading resource pools: %w", err)
	}

	return &engine.Context{
		Initiatives:  initiatives,
		Dependencies: dependencies,
		Constraints:  constraints,
		Links:        links,
		Requirements: requirements,
		Pools:        pools,
		Period:       period,
	}, nil
}

func (s *consequenceService) Evaluate(ctx context.Context, req contract.EvaluateRequest) (resp *contract.EvaluateResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "consequence.evaluate", started, err, map[string]any{
			"scenario_id":   req.ScenarioID,
			"initiative_id": req.InitiativeID,
		})
	}()

	snapshot, err := s.loadSnapshot(ctx, req.ScenarioID, req.Period)
	if err != nil {
		return nil, err
	}

	if req.InitiativeID != "" {
		if snapshot.InitiativeByID(req.InitiativeID) == nil {
			return nil, contract.NewConsequenceError(contract.ErrUnknownInitiative,
				"initiative %s not in scenario", req.InitiativeID)
		}
		issues := engine.ViolationsForInitiative(req.InitiativeID, snapshot)
		return &contract.EvaluateResponse{Issues: &issues}, nil
	}

	report := engine.EvaluateCurrentState(snapshot)
	return &contract.EvaluateResponse{Report: report}, nil
}

func (s *consequenceService) WhatIf(ctx context.Context, req contract.WhatIfRequest) (resp *contract.WhatIfResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "consequence.what_if", started, err, map[string]any{
			"initiative_id": req.InitiativeID,
		})
	}()

	if req.NewEnd.Before(req.NewStart) {
		return nil, contract.NewConsequenceError(contract.ErrInvalidDates,
			"proposed end %s is before start %s",
			req.NewEnd.Format(domain.DateLayout), req.NewStart.Format(domain.DateLayout))
	}

	snapshot, err := s.loadSnapshot(ctx, req.ScenarioID, req.Period)
	if err != nil {
		return nil, err
	}
	initiative := snapshot.InitiativeByID(req.InitiativeID)
	if initiative == nil {
		return nil, contract.NewConsequenceError(contract.ErrUnknownInitiative,
			"initiative %s not found", req.InitiativeID)
	}

	report := engine.EvaluateChange(req.InitiativeID, req.NewStart, req.NewEnd, snapshot)
	return &contract.WhatIfResponse{
		Initiative: initiative,
		Proposed:   engine.DateRange{Start: req.NewStart, End: req.NewEnd},
		Report:     report,
	}, nil
}

func (s *consequenceService) Allocations(ctx context.Context, req contract.AllocationRequest) (resp *contract.AllocationResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "consequence.allocations", started, err, map[string]any{
			"pool_id": req.PoolID,
		})
	}()

	snapshot, err := s.loadSnapshot(ctx, req.ScenarioID, req.Period)
	if err != nil {
		return nil, err
	}

	allocations := engine.Allocate(snapshot, snapshot.PeriodType())
	conflicts := engine.Conflicts(allocations, snapshot)

	if req.PoolID != "" {
		if _, poolErr := s.resources.GetPoolByID(ctx, req.PoolID); poolErr != nil {
			return nil, contract.NewConsequenceError(contract.ErrUnknownPool, "pool %s: %v", req.PoolID, poolErr)
		}
		allocations = filterAllocations(allocations, req.PoolID)
		conflicts = filterConflicts(conflicts, req.PoolID)
	}

	return &contract.AllocationResponse{Allocations: allocations, Conflicts: conflicts}, nil
}

func (s *consequenceService) Cycles(ctx context.Context) (resp *contract.CyclesResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "consequence.cycles", started, err, nil)
	}()

	dependencies, err := s.dependencies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dependencies: %w", err)
	}
	report := engine.CheckCycles(dependencies)

	names := make(map[string]string)
	if report.HasCycles {
		initiatives, listErr := s.initiatives.List(ctx)
		if listErr != nil {
			return nil, fmt.Errorf("loading initiatives: %w", listErr)
		}
		byID := make(map[string]string, len(initiatives))
		for _, i := range initiatives {
			byID[i.ID] = i.Name
		}
		for _, cycle := range report.Cycles {
			for _, id := range cycle {
				if name, ok := byID[id]; ok {
					names[id] = name
				}
			}
		}
	}

	return &contract.CyclesResponse{Report: report, Names: names}, nil
}

func filterAllocations(in []engine.Allocation, poolID string) []engine.Allocation {
	var out []engine.Allocation
	for _, a := range in {
		if a.PoolID == poolID {
			out = append(out, a)
		}
	}
	return out
}

func filterConflicts(in []engine.Conflict, poolID string) []engine.Conflict {
	var out []engine.Conflict
	for _, c := range in {
		if c.PoolID == poolID {
			out = append(out, c)
		}
	}
	return out
}
