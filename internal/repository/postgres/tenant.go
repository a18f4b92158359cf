package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if err := r.writerDB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	return r.writerDB.WithContext(ctx).Save(tenant).Error
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Tenant{}, "id = ?", id).Error
}

func (r *TenantRepository) List(ctx context.Context, search string) ([]domain.Tenant, error) {
	q := r.readerDB.WithContext(ctx).Order("nome ASC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("nome ILIKE ? OR slug ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var tenants []domain.Tenant
	if err := q.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	err := r.readerDB.WithContext(ctx).
		Where("criado_em >= ?", since).
		Order("criado_em DESC").
		Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepository) Counts(ctx context.Context, tenantID string) (*domain.TenantCounts, error) {
	counts := &domain.TenantCounts{}

	type countTarget struct {
		model any
		dest  *int64
	}
	targets := []countTarget{
		{&domain.User{}, &counts.Users},
		{&domain.Client{}, &counts.Clients},
		{&domain.Vehicle{}, &counts.Vehicles},
		{&domain.WorkOrder{}, &counts.WorkOrders},
	}

	for _, t := range targets {
		if err := tenantScoped(r.readerDB, ctx, tenantID).Model(t.model).Count(t.dest).Error; err != nil {
			return nil, err
		}
	}

	return counts, nil
}

func (r *TenantRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	q := r.readerDB.WithContext(ctx).Model(&domain.Tenant{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
