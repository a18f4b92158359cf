package repository

import (
	"context"
	"time"

	"github.com/oficinapro/workshop-api/internal/domain"
)

// Tenant-owned entities take the effective tenant id as a mandatory
// parameter. Keeping it positional rather than ambient is what makes the
// isolation invariant structural: there is no way to call a scoped method
// without saying which tenant the caller is acting for.

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string) ([]domain.Tenant, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Tenant, error)
	Counts(ctx context.Context, tenantID string) (*domain.TenantCounts, error)
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)
}

//go:generate mockery --name SubscriptionRepository --output ../mocks
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	GetByID(ctx context.Context, id string) (*domain.Subscription, error)
	// Current returns the most recent TRIAL/ATIVA row with its plan, or
	// nil when the tenant has no live subscription.
	Current(ctx context.Context, tenantID string) (*domain.Subscription, error)
	// CancelLiveAndCreate transitions any live row for the tenant to
	// CANCELADA and inserts the new row, in one transaction.
	CancelLiveAndCreate(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	UpdateStatus(ctx context.Context, id string, status domain.SubscriptionStatus) error
	// ExpireLapsed bulk-transitions live rows whose period ended before
	// now to VENCIDA and returns how many changed.
	ExpireLapsed(ctx context.Context, now time.Time) (int64, error)
	CountByStatus(ctx context.Context, status domain.SubscriptionStatus) (int64, error)
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Subscription, error)
	ActiveMRR(ctx context.Context) (float64, error)
}

//go:generate mockery --name PlanRepository --output ../mocks
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Plan, error)
	Update(ctx context.Context, plan *domain.Plan) error
	List(ctx context.Context, onlyActive bool) ([]domain.Plan, error)
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// GetByID is unscoped: it backs identity reloading, where the tenant
	// is not yet known.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail is the global login lookup (SUPERADMIN accounts are
	// tenant-less, so login cannot be scoped).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	GetScoped(ctx context.Context, tenantID, id string) (*domain.User, error)
	List(ctx context.Context, tenantID string) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, tenantID, id string) error
	EmailExists(ctx context.Context, tenantID, email, excludeID string) (bool, error)
	CountActive(ctx context.Context, tenantID string) (int64, error)
}

//go:generate mockery --name ClientRepository --output ../mocks
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Client, error)
	List(ctx context.Context, tenantID, search string) ([]domain.Client, error)
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, tenantID, id string) (*domain.Vehicle, error)
}

//go:generate mockery --name WorkOrderRepository --output ../mocks
type WorkOrderRepository interface {
	Create(ctx context.Context, order *domain.WorkOrder) (*domain.WorkOrder, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.WorkOrder, error)
	// GetByToken is the public portal lookup; the token is the capability.
	GetByToken(ctx context.Context, token string) (*domain.WorkOrder, error)
	List(ctx context.Context, tenantID string, filter domain.WorkOrderFilter) ([]domain.WorkOrder, int64, error)
	Update(ctx context.Context, order *domain.WorkOrder) error
	AddHistory(ctx context.Context, entry *domain.StatusHistory) error
	ListHistory(ctx context.Context, tenantID, orderID string) ([]domain.StatusHistory, error)
	SumFinishedTotal(ctx context.Context, tenantID string) (float64, error)
	AddPhoto(ctx context.Context, photo *domain.Photo) (*domain.Photo, error)
	GetPhoto(ctx context.Context, tenantID, photoID string) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, tenantID, photoID string) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	Subscription() SubscriptionRepository
	Plan() PlanRepository
	User() UserRepository
	Client() ClientRepository
	WorkOrder() WorkOrderRepository
}
