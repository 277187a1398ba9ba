package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/repository"
)

type initiativeService struct {
	initiatives repository.InitiativeRepo
}

func NewInitiativeService(initiatives repository.InitiativeRepo) InitiativeService {
	return &initiativeService{initiatives: initiatives}
}

func (s *initiativeService) Create(ctx context.Context, i *domain.Initiative) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Type == "" {
		i.Type = domain.TypeProject
	}
	if i.Status == "" {
		i.Status = domain.StatusProposed
	}
	if err := i.ValidateSchedule(); err != nil {
		return err
	}
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	return s.initiatives.Create(ctx, i)
}

func (s *initiativeService) GetByID(ctx context.Context, id string) (*domain.Initiative, error) {
	return s.initiatives.GetByID(ctx, id)
}

func (s *initiativeService) List(ctx context.Context) ([]domain.Initiative, error) {
	return s.initiatives.List(ctx)
}

func (s *initiativeService) Update(ctx context.Context, i *domain.Initiative) error {
	if err := i.ValidateSchedule(); err != nil {
		return err
	}
	i.UpdatedAt = time.Now().UTC()
	return s.initiatives.Update(ctx, i)
}

func (s *initiativeService) Delete(ctx context.Context, id string) error {
	if _, err := s.initiatives.GetByID(ctx, id); err != nil {
		return fmt.Errorf("deleting initiative: %w", err)
	}
	return s.initiatives.Delete(ctx, id)
}
