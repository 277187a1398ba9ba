package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/repository"
)

type portfolioService struct {
	portfolio repository.PortfolioRepo
}

func NewPortfolioService(portfolio repository.PortfolioRepo) PortfolioService {
	return &portfolioService{portfolio: portfolio}
}

func (s *portfolioService) CreateCapability(ctx context.Context, c *domain.Capability) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.portfolio.CreateCapability(ctx, c)
}

func (s *portfolioService) ListCapabilities(ctx context.Context) ([]domain.Capability, error) {
	return s.portfolio.ListCapabilities(ctx)
}

func (s *portfolioService) DeleteCapability(ctx context.Context, id string) error {
	return s.portfolio.DeleteCapability(ctx, id)
}

func (s *portfolioService) CreateSystem(ctx context.Context, sys *domain.System) error {
	if sys.ID == "" {
		sys.ID = uuid.New().String()
	}
	if sys.SupportEndDate != nil && sys.ExtendedSupportEndDate != nil &&
		sys.ExtendedSupportEndDate.Before(*sys.SupportEndDate) {
		return fmt.Errorf("extended support for %q ends before standard support", sys.Name)
	}
	now := time.Now().UTC()
	sys.CreatedAt = now
	sys.UpdatedAt = now
	return s.portfolio.CreateSystem(ctx, sys)
}

func (s *portfolioService) ListSystems(ctx context.Context, capabilityID string) ([]domain.System, error) {
	if capabilityID != "" {
		return s.portfolio.ListSystemsByCapability(ctx, capabilityID)
	}
	return s.portfolio.ListSystems(ctx)
}

func (s *portfolioService) DeleteSystem(ctx context.Context, id string) error {
	return s.portfolio.DeleteSystem(ctx, id)
}

func (s *portfolioService) CreateFinancialPeriod(ctx context.Context, p *domain.FinancialPeriod) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Type == "" {
		p.Type = domain.PeriodYear
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("financial period %q ends before it starts", p.Name)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.portfolio.CreateFinancialPeriod(ctx, p)
}

func (s *portfolioService) ListFinancialPeriods(ctx context.Context) ([]domain.FinancialPeriod, error) {
	return s.portfolio.ListFinancialPeriods(ctx)
}

func (s *portfolioService) DeleteFinancialPeriod(ctx context.Context, id string) error {
	return s.portfolio.DeleteFinancialPeriod(ctx, id)
}
