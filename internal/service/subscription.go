package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

// trialPlanSlug names the plan every registration trial points at.
const trialPlanSlug = "trial"

// SubscriptionService owns the subscription state machine. All writes to
// the assinaturas table go through here or the tenant-admin operations;
// nothing else touches it.
type SubscriptionService struct {
	repo      repository.Repository
	logger    *logger.Logger
	trialDays int
	now       func() time.Time
}

func NewSubscriptionService(repo repository.Repository, logger *logger.Logger, trialDays int) *SubscriptionService {
	return &SubscriptionService{
		repo:      repo,
		logger:    logger,
		trialDays: trialDays,
		now:       time.Now,
	}
}

// Current returns the most recent TRIAL/ATIVA subscription with its plan,
// or nil when the tenant has none (all rows expired or cancelled).
func (s *SubscriptionService) Current(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	return s.repo.Subscription().Current(ctx, tenantID)
}

// StartTrial creates the initial TRIAL row for a freshly registered tenant.
// Called exactly once, at registration.
func (s *SubscriptionService) StartTrial(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	plan, err := s.repo.Plan().GetBySlug(ctx, trialPlanSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	now := s.now()
	sub := &domain.Subscription{
		TenantID: tenantID,
		PlanID:   plan.ID,
		Status:   domain.SubscriptionStatusTrial,
		StartsAt: now,
		EndsAt:   now.AddDate(0, 0, s.trialDays),
	}

	return s.repo.Subscription().Create(ctx, sub)
}

// Renew cancels any live subscription for the tenant and creates a new
// ATIVA row ending months from now, as one transaction. A VENCIDA row is
// deliberately left untouched: it is already terminal for billing.
func (s *SubscriptionService) Renew(ctx context.Context, tenantID, planID string, months int) (*domain.Subscription, error) {
	if months < 1 {
		return nil, ErrInvalidPeriod
	}

	plan, err := s.repo.Plan().GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	now := s.now()
	sub := &domain.Subscription{
		TenantID: tenantID,
		PlanID:   plan.ID,
		Status:   domain.SubscriptionStatusActive,
		StartsAt: now,
		EndsAt:   now.AddDate(0, months, 0),
	}

	return s.repo.Subscription().CancelLiveAndCreate(ctx, sub)
}

// Cancel transitions one subscription row to CANCELADA.
func (s *SubscriptionService) Cancel(ctx context.Context, subscriptionID string) error {
	if _, err := s.repo.Subscription().GetByID(ctx, subscriptionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubscriptionNotFound
		}
		return err
	}

	return s.repo.Subscription().UpdateStatus(ctx, subscriptionID, domain.SubscriptionStatusCancelled)
}

// SweepExpired bulk-transitions lapsed TRIAL/ATIVA rows to VENCIDA and
// returns how many changed. The predicate excludes already-VENCIDA rows,
// so running it twice in a row is a no-op the second time.
func (s *SubscriptionService) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.repo.Subscription().ExpireLapsed(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire lapsed subscriptions: %w", err)
	}

	if count > 0 {
		s.logger.Infof("Marked %d subscription(s) as VENCIDA", count)
	}

	return count, nil
}
