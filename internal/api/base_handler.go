package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/service"
	"github.com/oficinapro/workshop-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// Scope returns the tenant scope resolved by the middleware chain.
func (h *BaseHandler) Scope(ginCtx *gin.Context) (domain.TenantScope, bool) {
	scope, err := utils.GetTenantScopeFromContext(h.RequestCtx(ginCtx))
	if err != nil {
		ginCtx.JSON(http.StatusForbidden, dto.Error{Error: "Access denied"})
		return domain.TenantScope{}, false
	}
	return scope, true
}

// Identity returns the authenticated identity.
func (h *BaseHandler) Identity(ginCtx *gin.Context) (*domain.Identity, bool) {
	identity, err := utils.GetIdentityFromContext(h.RequestCtx(ginCtx))
	if err != nil {
		ginCtx.JSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
		return nil, false
	}
	return identity, true
}

// HandleError maps service errors to HTTP responses. Every ErrForbidden
// collapses into the same body regardless of cause.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Error{Error: "Access denied"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrSubscriptionNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrPhotoNotFound),
		errors.Is(err, service.ErrInvalidPortalToken):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrSlugInUse),
		errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrTenantHasData),
		errors.Is(err, service.ErrOrderAlreadyHandled):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrSelfDelete),
		errors.Is(err, service.ErrInvalidOrderStatus),
		errors.Is(err, service.ErrInvalidTenantStatus):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Internal server error"})
	}
}
