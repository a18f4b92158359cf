package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
)

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.writerDB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID backs identity reloading and reads from the writer: deactivation
// must be visible on the very next request, not after replica catch-up.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.writerDB.WithContext(ctx).Preload("Tenant").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).Preload("Tenant").First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetScoped never returns SUPERADMIN rows: they are not part of any
// tenant's user list even when impersonating.
func (r *UserRepository) GetScoped(ctx context.Context, tenantID, id string) (*domain.User, error) {
	var user domain.User
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Where("id = ? AND papel <> ?", id, domain.RoleSuperAdmin).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, tenantID string) ([]domain.User, error) {
	var users []domain.User
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Where("papel <> ?", domain.RoleSuperAdmin).
		Order("nome ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.writerDB.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) Delete(ctx context.Context, tenantID, id string) error {
	result := tenantScoped(r.writerDB, ctx, tenantID).
		Where("id = ?", id).
		Delete(&domain.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) EmailExists(ctx context.Context, tenantID, email, excludeID string) (bool, error) {
	q := tenantScoped(r.readerDB, ctx, tenantID).
		Model(&domain.User{}).
		Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) CountActive(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Model(&domain.User{}).
		Where("ativo = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
