package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
)

//go:generate mockery --name ClientService --output ../mocks
type ClientService interface {
	Create(ctx context.Context, scope domain.TenantScope, client *domain.Client) (*domain.Client, error)
	Get(ctx context.Context, scope domain.TenantScope, id string) (*domain.Client, error)
	List(ctx context.Context, scope domain.TenantScope, search string) ([]domain.Client, error)
	AddVehicle(ctx context.Context, scope domain.TenantScope, clientID string, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, scope domain.TenantScope, id string) (*domain.Vehicle, error)
}

type ClientHandler struct {
	*BaseHandler
	service ClientService
}

func NewClientHandler(service ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	client, err := h.service.Create(h.RequestCtx(c), scope, &domain.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	clients, err := h.service.List(h.RequestCtx(c), scope, c.Query("busca"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	client, err := h.service.Get(h.RequestCtx(c), scope, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) AddVehicle(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	vehicle, err := h.service.AddVehicle(h.RequestCtx(c), scope, c.Param("id"), &domain.Vehicle{
		Plate: req.Plate,
		Model: req.Model,
		Color: req.Color,
		Year:  req.Year,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (h *ClientHandler) GetVehicle(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	vehicle, err := h.service.GetVehicle(h.RequestCtx(c), scope, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
