package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
)

type SubscriptionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSubscriptionRepository(writerDB, readerDB *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	if err := r.writerDB.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	var sub domain.Subscription
	if err := r.readerDB.WithContext(ctx).Preload("Plan").First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Current reads from the writer so a renew in the same request cycle is
// always visible; a replica-lag window here would mean a spurious admission
// denial right after payment.
func (r *SubscriptionRepository) Current(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.writerDB.WithContext(ctx).
		Preload("Plan").
		Where("empresa_id = ? AND status IN ?", tenantID, domain.LiveStatuses()).
		Order("criado_em DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// CancelLiveAndCreate closes any live row for the tenant and inserts the
// new one atomically, so no concurrent reader observes two live
// subscriptions (or a half-applied renewal).
func (r *SubscriptionRepository) CancelLiveAndCreate(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Subscription{}).
			Where("empresa_id = ? AND status IN ?", sub.TenantID, domain.LiveStatuses()).
			Update("status", domain.SubscriptionStatusCancelled).Error
		if err != nil {
			return err
		}
		return tx.Create(sub).Error
	})
	if err != nil {
		return nil, err
	}

	if err := r.writerDB.WithContext(ctx).Preload("Plan").First(sub, "id = ?", sub.ID).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id string, status domain.SubscriptionStatus) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExpireLapsed is the sweep's predicate-based bulk update. Matching on live
// statuses only makes it idempotent: a second run finds nothing to flip.
func (r *SubscriptionRepository) ExpireLapsed(ctx context.Context, now time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("status IN ? AND data_fim < ?", domain.LiveStatuses(), now).
		Update("status", domain.SubscriptionStatusExpired)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *SubscriptionRepository) CountByStatus(ctx context.Context, status domain.SubscriptionStatus) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SubscriptionRepository) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := r.readerDB.WithContext(ctx).
		Preload("Plan").
		Where("status IN ? AND data_fim BETWEEN ? AND ?", domain.LiveStatuses(), from, to).
		Order("data_fim ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubscriptionRepository) ActiveMRR(ctx context.Context) (float64, error) {
	var mrr float64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Subscription{}).
		Select("COALESCE(SUM(planos.preco), 0)").
		Joins("JOIN planos ON planos.id = assinaturas.plano_id").
		Where("assinaturas.status = ?", domain.SubscriptionStatusActive).
		Scan(&mrr).Error
	if err != nil {
		return 0, err
	}
	return mrr, nil
}
