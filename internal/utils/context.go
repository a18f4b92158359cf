package utils

import (
	"context"
	"errors"

	"github.com/oficinapro/workshop-api/internal/domain"
)

type ContextKey string

const (
	IdentityKey    ContextKey = "identity"
	TenantScopeKey ContextKey = "tenant_scope"
)

var (
	ErrNoIdentityInContext = errors.New("no identity found in context")
	ErrInvalidIdentityType = errors.New("invalid identity type in context")
	ErrNoScopeInContext    = errors.New("no tenant scope found in context")
	ErrInvalidScopeType    = errors.New("invalid tenant scope type in context")
)

// GetIdentityFromContext returns the per-request identity placed there by
// the auth middleware.
func GetIdentityFromContext(c context.Context) (*domain.Identity, error) {
	v := c.Value(IdentityKey)
	if v == nil {
		return nil, ErrNoIdentityInContext
	}

	identity, ok := v.(*domain.Identity)
	if !ok {
		return nil, ErrInvalidIdentityType
	}

	return identity, nil
}

// GetTenantScopeFromContext returns the effective tenant scope resolved by
// the tenant middleware. The scope may be the OperatingWithoutTenant
// variant; callers that need a tenant must check.
func GetTenantScopeFromContext(c context.Context) (domain.TenantScope, error) {
	v := c.Value(TenantScopeKey)
	if v == nil {
		return domain.TenantScope{}, ErrNoScopeInContext
	}

	scope, ok := v.(domain.TenantScope)
	if !ok {
		return domain.TenantScope{}, ErrInvalidScopeType
	}

	return scope, nil
}
