package service

import (
	"errors"

	"github.com/oficinapro/workshop-api/internal/domain"
)

var (
	// ErrForbidden is the root of every denial: suspended tenant, expired
	// subscription, seat limit, missing effective tenant. Handlers collapse
	// all of them into one uniform 403 body so callers cannot probe tenant
	// or billing state through error content.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials covers every login failure, including inactive
	// users and suspended tenants.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Tenant errors
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrSlugInUse           = errors.New("slug already in use")
	ErrTenantHasData       = errors.New("tenant has linked data")
	ErrInvalidTenantStatus = errors.New("invalid tenant status")

	// Subscription/plan errors
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrInvalidPeriod        = errors.New("renewal period must be at least one month")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSelfDelete         = errors.New("cannot delete own user")

	// Client/vehicle errors
	ErrClientNotFound  = errors.New("client not found")
	ErrVehicleNotFound = errors.New("vehicle not found")

	// Work order errors
	ErrOrderNotFound       = errors.New("work order not found")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrInvalidPortalToken  = errors.New("invalid portal token")
	ErrOrderAlreadyHandled = errors.New("work order already handled")
	ErrInvalidOrderStatus  = errors.New("invalid work order status")
)

// requireTenant unwraps the effective tenant from a scope. The
// OperatingWithoutTenant variant (a SUPERADMIN with no selector) denies
// every tenant-scoped operation.
func requireTenant(scope domain.TenantScope) (string, error) {
	tenantID, ok := scope.TenantID()
	if !ok {
		return "", ErrForbidden
	}
	return tenantID, nil
}
