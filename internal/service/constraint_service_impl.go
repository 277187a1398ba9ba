package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/repository"
)

type constraintService struct {
	constraints repository.ConstraintRepo
	initiatives repository.InitiativeRepo
}

func NewConstraintService(constraints repository.ConstraintRepo, initiatives repository.InitiativeRepo) ConstraintService {
	return &constraintService{constraints: constraints, initiatives: initiatives}
}

func validateConstraint(c *domain.Constraint) error {
	if !domain.ValidConstraintTypes[string(c.Type)] {
		return fmt.Errorf("invalid constraint type %q", c.Type)
	}
	if c.Hardness != domain.Hard && c.Hardness != domain.Soft {
		return fmt.Errorf("hardness must be hard or soft, got %q", c.Hardness)
	}
	if c.EffectiveDate != nil && c.ExpiryDate != nil && c.ExpiryDate.Before(*c.EffectiveDate) {
		return fmt.Errorf("constraint %q expires before it takes effect", c.Name)
	}
	return nil
}

func (s *constraintService) Create(ctx context.Context, c *domain.Constraint) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Type == "" {
		c.Type = domain.ConstraintOther
	}
	if c.Hardness == "" {
		c.Hardness = domain.Soft
	}
	if err := validateConstraint(c); err != nil {
		return err
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.constraints.Create(ctx, c)
}

func (s *constraintService) GetByID(ctx context.Context, id string) (*domain.Constraint, error) {
	return s.constraints.GetByID(ctx, id)
}

func (s *constraintService) List(ctx context.Context) ([]domain.Constraint, error) {
	return s.constraints.List(ctx)
}

func (s *constraintService) Update(ctx context.Context, c *domain.Constraint) error {
	if err := validateConstraint(c); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.constraints.Update(ctx, c)
}

func (s *constraintService) Delete(ctx context.Context, id string) error {
	return s.constraints.Delete(ctx, id)
}

func (s *constraintService) Link(ctx context.Context, initiativeID, constraintID string) error {
	if _, err := s.initiatives.GetByID(ctx, initiativeID); err != nil {
		return fmt.Errorf("initiative: %w", err)
	}
	if _, err := s.constraints.GetByID(ctx, constraintID); err != nil {
		return fmt.Errorf("constraint: %w", err)
	}
	return s.constraints.Link(ctx, initiativeID, constraintID)
}

func (s *constraintService) Unlink(ctx context.Context, initiativeID, constraintID string) error {
	return s.constraints.Unlink(ctx, initiativeID, constraintID)
}
