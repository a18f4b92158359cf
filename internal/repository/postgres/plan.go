package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
)

type PlanRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPlanRepository(writerDB, readerDB *gorm.DB) *PlanRepository {
	return &PlanRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PlanRepository) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if err := r.writerDB.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	var plan domain.Plan
	if err := r.readerDB.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) GetBySlug(ctx context.Context, slug string) (*domain.Plan, error) {
	var plan domain.Plan
	if err := r.readerDB.WithContext(ctx).First(&plan, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) Update(ctx context.Context, plan *domain.Plan) error {
	return r.writerDB.WithContext(ctx).Save(plan).Error
}

func (r *PlanRepository) List(ctx context.Context, onlyActive bool) ([]domain.Plan, error) {
	q := r.readerDB.WithContext(ctx).Order("preco ASC")
	if onlyActive {
		q = q.Where("ativo = ?", true)
	}

	var plans []domain.Plan
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	q := r.readerDB.WithContext(ctx).Model(&domain.Plan{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
