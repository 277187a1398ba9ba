package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/repository"
)

type resourceService struct {
	resources   repository.ResourceRepo
	initiatives repository.InitiativeRepo
}

func NewResourceService(resources repository.ResourceRepo, initiatives repository.InitiativeRepo) ResourceService {
	return &resourceService{resources: resources, initiatives: initiatives}
}

func (s *resourceService) CreatePool(ctx context.Context, p *domain.ResourcePool) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CapacityPerPeriod != nil && *p.CapacityPerPeriod < 0 {
		return fmt.Errorf("pool capacity must not be negative")
	}
	if p.PeriodType == "" {
		p.PeriodType = domain.PeriodMonth
	}
	if !domain.ValidPeriodTypes[string(p.PeriodType)] {
		return fmt.Errorf("invalid period type %q", p.PeriodType)
	}
	if p.CapacityUnit == "" {
		p.CapacityUnit = "person-days"
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.resources.CreatePool(ctx, p)
}

func (s *resourceService) ListPools(ctx context.Context) ([]domain.ResourcePool, error) {
	return s.resources.ListPools(ctx)
}

func (s *resourceService) DeletePool(ctx context.Context, id string) error {
	return s.resources.DeletePool(ctx, id)
}

func (s *resourceService) AssignEffort(ctx context.Context, req *domain.ResourceRequirement) error {
	if req.EffortRequired < 0 {
		return fmt.Errorf("effort required must not be negative")
	}
	if _, err := s.initiatives.GetByID(ctx, req.InitiativeID); err != nil {
		return fmt.Errorf("initiative: %w", err)
	}
	if _, err := s.resources.GetPoolByID(ctx, req.PoolID); err != nil {
		return fmt.Errorf("pool: %w", err)
	}
	return s.resources.UpsertRequirement(ctx, req)
}

func (s *resourceService) UnassignEffort(ctx context.Context, initiativeID, poolID string) error {
	return s.resources.DeleteRequirement(ctx, initiativeID, poolID)
}

func (s *resourceService) AddResource(ctx context.Context, r *domain.Resource) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Availability == 0 {
		r.Availability = 1.0
	}
	if r.Availability < 0 || r.Availability > 1 {
		return fmt.Errorf("availability must be between 0 and 1")
	}
	if _, err := s.resources.GetPoolByID(ctx, r.PoolID); err != nil {
		return fmt.Errorf("pool: %w", err)
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.resources.CreateResource(ctx, r)
}

func (s *resourceService) ListResources(ctx context.Context, poolID string) ([]domain.Resource, error) {
	return s.resources.ListResourcesByPool(ctx, poolID)
}
