package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
)

// AdmissionService gates mutating operations on current subscription state.
// Every check re-reads storage: subscription state changes asynchronously
// (the daily sweep) relative to request handling, so nothing here is cached.
type AdmissionService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewAdmissionService(repo repository.Repository) *AdmissionService {
	return &AdmissionService{
		repo: repo,
		now:  time.Now,
	}
}

// CheckWorkOrderCreate denies when the tenant has no live subscription, an
// expired one, or a trial whose end date has already passed. The last case
// covers the window between expiry and the next sweep run: the sweep is
// eventual, this check is authoritative at write time.
func (s *AdmissionService) CheckWorkOrderCreate(ctx context.Context, tenantID string) error {
	sub, err := s.repo.Subscription().Current(ctx, tenantID)
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("%w: no live subscription", ErrForbidden)
	}
	if sub.Status == domain.SubscriptionStatusExpired {
		return fmt.Errorf("%w: subscription expired", ErrForbidden)
	}
	if sub.Status == domain.SubscriptionStatusTrial && sub.IsLapsed(s.now()) {
		return fmt.Errorf("%w: trial period ended", ErrForbidden)
	}
	return nil
}

// CheckUserCreate enforces the plan's seat limit over active users. A nil
// limit means unlimited; a tenant without a live subscription is not seat
// limited (it is blocked from operating elsewhere).
func (s *AdmissionService) CheckUserCreate(ctx context.Context, tenantID string) error {
	sub, err := s.repo.Subscription().Current(ctx, tenantID)
	if err != nil {
		return err
	}
	if sub == nil || sub.Plan == nil || sub.Plan.MaxUsers == nil {
		return nil
	}

	count, err := s.repo.User().CountActive(ctx, tenantID)
	if err != nil {
		return err
	}
	if count >= int64(*sub.Plan.MaxUsers) {
		return fmt.Errorf("%w: plan seat limit reached", ErrForbidden)
	}
	return nil
}
