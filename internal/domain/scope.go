package domain

// TenantScope is the effective tenant of a request, resolved once at the
// tenant middleware boundary. It has exactly two variants:
//
//   - OperatingAsTenant(id): the request is scoped to that tenant
//   - OperatingWithoutTenant(): a SUPERADMIN request with no selector;
//     tenant-scoped operations must reject it
//
// Downstream code matches on the variant instead of re-inspecting the role.
type TenantScope struct {
	tenantID string
}

func OperatingAsTenant(tenantID string) TenantScope {
	return TenantScope{tenantID: tenantID}
}

func OperatingWithoutTenant() TenantScope {
	return TenantScope{}
}

// TenantID returns the effective tenant id. ok is false for the
// OperatingWithoutTenant variant.
func (s TenantScope) TenantID() (string, bool) {
	return s.tenantID, s.tenantID != ""
}

func (s TenantScope) HasTenant() bool {
	return s.tenantID != ""
}
