package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
	"github.com/oficinapro/workshop-api/internal/utils"
)

// TenantSlugHeader selects the tenant a SUPERADMIN operates on. Ignored for
// everyone else.
const TenantSlugHeader = "X-Empresa-Slug"

type TenantMiddleware struct {
	repo repository.Repository
}

func NewTenantMiddleware(repo repository.Repository) *TenantMiddleware {
	return &TenantMiddleware{
		repo: repo,
	}
}

// ResolveTenant is the single boundary where the effective tenant is
// decided. It runs after JWTAuth and places a TenantScope in the request
// context; services never re-derive the tenant from headers or claims.
//
// Regular users always operate as their home tenant, which is reloaded
// fresh on every request so a suspension cuts access immediately. The
// denial body is identical for every reason (no home tenant, tenant gone,
// suspended, cancelled) so callers cannot probe tenant state.
//
// A SUPERADMIN with no selector header proceeds without a tenant and can
// only reach platform-level routes; with a selector it operates as that
// tenant regardless of the tenant's status.
func (m *TenantMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := utils.GetIdentityFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		var scope domain.TenantScope

		if identity.Role == domain.RoleSuperAdmin {
			slug := c.GetHeader(TenantSlugHeader)
			if slug == "" {
				scope = domain.OperatingWithoutTenant()
			} else {
				tenant, err := m.repo.Tenant().GetBySlug(c.Request.Context(), slug)
				if err != nil {
					c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
					return
				}
				scope = domain.OperatingAsTenant(tenant.ID)
			}
		} else {
			if identity.TenantID == "" {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}

			tenant, err := m.repo.Tenant().GetByID(c.Request.Context(), identity.TenantID)
			if err != nil || tenant.Status != domain.TenantStatusActive {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}

			scope = domain.OperatingAsTenant(tenant.ID)
		}

		ctx := context.WithValue(c.Request.Context(), utils.TenantScopeKey, scope)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(utils.TenantScopeKey), scope)
		c.Next()
	}
}
