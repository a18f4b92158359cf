package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
	"github.com/oficinapro/workshop-api/internal/utils"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

// TenantSummary pairs a tenant with its live subscription for the
// super-admin listing. Subscription is nil when none is live.
type TenantSummary struct {
	Tenant       domain.Tenant        `json:"empresa"`
	Subscription *domain.Subscription `json:"assinatura,omitempty"`
}

// TenantDetail is the single-tenant super-admin view.
type TenantDetail struct {
	Tenant       domain.Tenant        `json:"empresa"`
	Subscription *domain.Subscription `json:"assinatura,omitempty"`
	Counts       domain.TenantCounts  `json:"totais"`
}

// TenantStats is the per-tenant revenue snapshot.
type TenantStats struct {
	Counts          domain.TenantCounts `json:"totais"`
	FinishedRevenue float64             `json:"faturamentoFinalizadas"`
}

// DashboardStats aggregates platform-wide numbers for the super-admin
// dashboard.
type DashboardStats struct {
	ActiveSubscriptions  int64                 `json:"assinaturasAtivas"`
	TrialSubscriptions   int64                 `json:"assinaturasTrial"`
	ExpiredSubscriptions int64                 `json:"assinaturasVencidas"`
	MonthlyRevenue       float64               `json:"receitaMensal"`
	ExpiringSoon         []domain.Subscription `json:"vencendoEmBreve"`
	RecentTenants        []domain.Tenant       `json:"empresasRecentes"`
}

type TenantUpdateInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	LogoURL *string
	DueDate *time.Time
}

// TenantService covers super-admin tenant administration plus the
// tenant-admin view of its own workshop profile.
type TenantService struct {
	repo   repository.Repository
	logger *logger.Logger
	now    func() time.Time
}

func NewTenantService(repo repository.Repository, logger *logger.Logger) *TenantService {
	return &TenantService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *TenantService) List(ctx context.Context, search string) ([]TenantSummary, error) {
	tenants, err := s.repo.Tenant().List(ctx, search)
	if err != nil {
		return nil, err
	}

	summaries := make([]TenantSummary, 0, len(tenants))
	for _, tenant := range tenants {
		sub, err := s.repo.Subscription().Current(ctx, tenant.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, TenantSummary{Tenant: tenant, Subscription: sub})
	}

	return summaries, nil
}

func (s *TenantService) Get(ctx context.Context, id string) (*TenantDetail, error) {
	tenant, err := s.getTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.Subscription().Current(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Tenant().Counts(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TenantDetail{
		Tenant:       *tenant,
		Subscription: sub,
		Counts:       *counts,
	}, nil
}

func (s *TenantService) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if tenant.Slug == "" {
		tenant.Slug = utils.Slugify(tenant.Name)
	}

	taken, err := s.repo.Tenant().SlugExists(ctx, tenant.Slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugInUse
	}

	if tenant.Status == "" {
		tenant.Status = domain.TenantStatusActive
	}

	return s.repo.Tenant().Create(ctx, tenant)
}

func (s *TenantService) Update(ctx context.Context, id string, input TenantUpdateInput) (*domain.Tenant, error) {
	tenant, err := s.getTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	applyTenantUpdate(tenant, input)
	if input.DueDate != nil {
		tenant.DueDate = input.DueDate
	}

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// UpdateStatus flips a tenant between ATIVA/SUSPENSA/CANCELADA. Suspension
// takes effect on the next request: the access guard reloads tenant state
// every time.
func (s *TenantService) UpdateStatus(ctx context.Context, id string, status domain.TenantStatus) (*domain.Tenant, error) {
	switch status {
	case domain.TenantStatusActive, domain.TenantStatusSuspended, domain.TenantStatusCancelled:
	default:
		return nil, ErrInvalidTenantStatus
	}

	tenant, err := s.getTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant.Status = status
	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, err
	}

	s.logger.Infof("Tenant %s status set to %s", tenant.Slug, status)
	return tenant, nil
}

// Delete removes a tenant only when nothing links to it. Tenants with data
// are suspended or cancelled instead, never deleted.
func (s *TenantService) Delete(ctx context.Context, id string) error {
	if _, err := s.getTenant(ctx, id); err != nil {
		return err
	}

	counts, err := s.repo.Tenant().Counts(ctx, id)
	if err != nil {
		return err
	}
	if counts.Users > 0 || counts.Clients > 0 || counts.Vehicles > 0 || counts.WorkOrders > 0 {
		return ErrTenantHasData
	}

	return s.repo.Tenant().Delete(ctx, id)
}

func (s *TenantService) Stats(ctx context.Context, tenantID string) (*TenantStats, error) {
	counts, err := s.repo.Tenant().Counts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.WorkOrder().SumFinishedTotal(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &TenantStats{
		Counts:          *counts,
		FinishedRevenue: revenue,
	}, nil
}

// Dashboard builds the platform-wide super-admin snapshot: subscription
// totals, active MRR, rows expiring within a week and tenants created in
// the last week.
func (s *TenantService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	now := s.now()

	var err error
	if stats.ActiveSubscriptions, err = s.repo.Subscription().CountByStatus(ctx, domain.SubscriptionStatusActive); err != nil {
		return nil, err
	}
	if stats.TrialSubscriptions, err = s.repo.Subscription().CountByStatus(ctx, domain.SubscriptionStatusTrial); err != nil {
		return nil, err
	}
	if stats.ExpiredSubscriptions, err = s.repo.Subscription().CountByStatus(ctx, domain.SubscriptionStatusExpired); err != nil {
		return nil, err
	}
	if stats.MonthlyRevenue, err = s.repo.Subscription().ActiveMRR(ctx); err != nil {
		return nil, err
	}
	if stats.ExpiringSoon, err = s.repo.Subscription().ListExpiringBetween(ctx, now, now.AddDate(0, 0, 7)); err != nil {
		return nil, err
	}
	if stats.RecentTenants, err = s.repo.Tenant().ListCreatedSince(ctx, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetOwn returns the workshop profile for the effective tenant.
func (s *TenantService) GetOwn(ctx context.Context, scope domain.TenantScope) (*domain.Tenant, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}
	return s.getTenant(ctx, tenantID)
}

// UpdateOwn lets a tenant ADMIN edit its workshop profile. Status, slug and
// the legacy due date stay super-admin only.
func (s *TenantService) UpdateOwn(ctx context.Context, scope domain.TenantScope, input TenantUpdateInput) (*domain.Tenant, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	applyTenantUpdate(tenant, input)
	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) getTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func applyTenantUpdate(tenant *domain.Tenant, input TenantUpdateInput) {
	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if input.Phone != nil {
		tenant.Phone = *input.Phone
	}
	if input.Email != nil {
		tenant.Email = *input.Email
	}
	if input.Address != nil {
		tenant.Address = *input.Address
	}
	if input.LogoURL != nil {
		tenant.LogoURL = *input.LogoURL
	}
}
