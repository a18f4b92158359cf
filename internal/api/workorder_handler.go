package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/service"
)

//go:generate mockery --name WorkOrderService --output ../mocks
type WorkOrderService interface {
	Create(ctx context.Context, scope domain.TenantScope, userID string, input service.WorkOrderCreateInput) (*domain.WorkOrder, error)
	Get(ctx context.Context, scope domain.TenantScope, id string) (*domain.WorkOrder, error)
	List(ctx context.Context, scope domain.TenantScope, filter domain.WorkOrderFilter) ([]domain.WorkOrder, int64, error)
	UpdateStatus(ctx context.Context, scope domain.TenantScope, id, status, userID string) (*domain.WorkOrder, error)
	History(ctx context.Context, scope domain.TenantScope, orderID string) ([]domain.StatusHistory, error)
	AddPhoto(ctx context.Context, scope domain.TenantScope, orderID, kind, contentType string, body io.Reader) (*domain.Photo, error)
	RemovePhoto(ctx context.Context, scope domain.TenantScope, photoID string) error
	PortalGet(ctx context.Context, token string) (*domain.WorkOrder, error)
	PortalApprove(ctx context.Context, token string) (*domain.WorkOrder, error)
}

type WorkOrderHandler struct {
	*BaseHandler
	service WorkOrderService
}

func NewWorkOrderHandler(service WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{service: service}
}

func (h *WorkOrderHandler) CreateOrder(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	items := make([]service.WorkOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.WorkOrderItemInput{
			ServiceName: item.ServiceName,
			Price:       item.Price,
		})
	}

	order, err := h.service.Create(h.RequestCtx(c), scope, identity.UserID, service.WorkOrderCreateInput{
		VehicleID:   req.VehicleID,
		ScheduledAt: req.ScheduledAt,
		Items:       items,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *WorkOrderHandler) ListOrders(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	var query dto.ListWorkOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	filter := query.ToWorkOrderFilter()
	orders, total, err := h.service.List(h.RequestCtx(c), scope, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	c.JSON(http.StatusOK, dto.ListWorkOrdersResponse{
		Data:     orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *WorkOrderHandler) GetOrder(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	order, err := h.service.Get(h.RequestCtx(c), scope, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) UpdateOrderStatus(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	order, err := h.service.UpdateStatus(h.RequestCtx(c), scope, c.Param("id"), req.Status, identity.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) GetOrderHistory(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	history, err := h.service.History(h.RequestCtx(c), scope, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// AddOrderPhoto accepts a multipart upload under the "foto" field.
func (h *WorkOrderHandler) AddOrderPhoto(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Failed to read photo file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	photo, err := h.service.AddPhoto(h.RequestCtx(c), scope, c.Param("id"), c.PostForm("tipo"), contentType, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (h *WorkOrderHandler) RemoveOrderPhoto(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	if err := h.service.RemovePhoto(h.RequestCtx(c), scope, c.Param("photoId")); err != nil {
		h.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
