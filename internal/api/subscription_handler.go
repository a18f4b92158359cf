package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/service"
)

//go:generate mockery --name SubscriptionService --output ../mocks
type SubscriptionService interface {
	Current(ctx context.Context, tenantID string) (*domain.Subscription, error)
	Renew(ctx context.Context, tenantID, planID string, months int) (*domain.Subscription, error)
	Cancel(ctx context.Context, subscriptionID string) error
}

//go:generate mockery --name PlanService --output ../mocks
type PlanService interface {
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	Get(ctx context.Context, id string) (*domain.Plan, error)
	Update(ctx context.Context, id string, input service.PlanUpdateInput) (*domain.Plan, error)
	List(ctx context.Context, onlyActive bool) ([]domain.Plan, error)
}

// SubscriptionHandler serves the tenant-facing subscription view and the
// plan catalog.
type SubscriptionHandler struct {
	*BaseHandler
	subscriptions SubscriptionService
	plans         PlanService
}

func NewSubscriptionHandler(subscriptions SubscriptionService, plans PlanService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		plans:         plans,
	}
}

// GetCurrent returns the effective tenant's live subscription, or 404 when
// none is live.
func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	tenantID, hasTenant := scope.TenantID()
	if !hasTenant {
		c.JSON(http.StatusForbidden, dto.Error{Error: "Access denied"})
		return
	}

	sub, err := h.subscriptions.Current(h.RequestCtx(c), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if sub == nil {
		h.HandleError(c, service.ErrSubscriptionNotFound)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ListPlans is the tenant-facing plan picker: active plans only.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.plans.List(h.RequestCtx(c), true)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// Renew switches the effective tenant to a plan for a number of months,
// replacing whatever subscription was live.
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	tenantID, hasTenant := scope.TenantID()
	if !hasTenant {
		c.JSON(http.StatusForbidden, dto.Error{Error: "Access denied"})
		return
	}

	var req dto.RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	sub, err := h.subscriptions.Renew(h.RequestCtx(c), tenantID, req.PlanID, req.Months)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// CancelSubscription is super-admin only: it terminates one subscription
// row.
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	if err := h.subscriptions.Cancel(h.RequestCtx(c), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
