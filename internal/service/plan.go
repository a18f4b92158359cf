package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
	"github.com/oficinapro/workshop-api/internal/utils"
)

type PlanUpdateInput struct {
	Name     *string
	MaxUsers *int
	Price    *float64
	Active   *bool
}

// PlanService manages the global billing tiers. Plans are reference data
// shared across tenants; only SUPERADMIN mutates them.
type PlanService struct {
	repo repository.Repository
}

func NewPlanService(repo repository.Repository) *PlanService {
	return &PlanService{
		repo: repo,
	}
}

func (s *PlanService) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if plan.Slug == "" {
		plan.Slug = utils.Slugify(plan.Name)
	}

	taken, err := s.repo.Plan().SlugExists(ctx, plan.Slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugInUse
	}

	return s.repo.Plan().Create(ctx, plan)
}

func (s *PlanService) Get(ctx context.Context, id string) (*domain.Plan, error) {
	plan, err := s.repo.Plan().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) Update(ctx context.Context, id string, input PlanUpdateInput) (*domain.Plan, error) {
	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.MaxUsers != nil {
		plan.MaxUsers = input.MaxUsers
	}
	if input.Price != nil {
		plan.Price = *input.Price
	}
	if input.Active != nil {
		plan.Active = *input.Active
	}

	if err := s.repo.Plan().Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// List returns all plans for SUPERADMIN, active plans only for everyone
// else (the tenant-facing plan picker).
func (s *PlanService) List(ctx context.Context, onlyActive bool) ([]domain.Plan, error) {
	return s.repo.Plan().List(ctx, onlyActive)
}
