package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/service"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	List(ctx context.Context, search string) ([]service.TenantSummary, error)
	Get(ctx context.Context, id string) (*service.TenantDetail, error)
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	Update(ctx context.Context, id string, input service.TenantUpdateInput) (*domain.Tenant, error)
	UpdateStatus(ctx context.Context, id string, status domain.TenantStatus) (*domain.Tenant, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, tenantID string) (*service.TenantStats, error)
	Dashboard(ctx context.Context) (*service.DashboardStats, error)
	GetOwn(ctx context.Context, scope domain.TenantScope) (*domain.Tenant, error)
	UpdateOwn(ctx context.Context, scope domain.TenantScope, input service.TenantUpdateInput) (*domain.Tenant, error)
}

// TenantHandler serves both the super-admin empresa administration and the
// tenant-admin view of its own workshop profile.
type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	summaries, err := h.service.List(h.RequestCtx(c), c.Query("busca"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	detail, err := h.service.Get(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), &domain.Tenant{
		Name:    req.Name,
		Slug:    req.Slug,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Update(h.RequestCtx(c), c.Param("id"), service.TenantUpdateInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		LogoURL: req.LogoURL,
		DueDate: req.DueDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

func (h *TenantHandler) UpdateTenantStatus(c *gin.Context) {
	var req dto.UpdateTenantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.UpdateStatus(h.RequestCtx(c), c.Param("id"), domain.TenantStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TenantHandler) GetTenantStats(c *gin.Context) {
	stats, err := h.service.Stats(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *TenantHandler) GetDashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(h.RequestCtx(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetWorkshop returns the effective tenant's own profile.
func (h *TenantHandler) GetWorkshop(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	tenant, err := h.service.GetOwn(h.RequestCtx(c), scope)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// UpdateWorkshop lets a tenant admin edit its own profile. Status, slug and
// due date fields are not accepted here.
func (h *TenantHandler) UpdateWorkshop(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.UpdateOwn(h.RequestCtx(c), scope, service.TenantUpdateInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}
