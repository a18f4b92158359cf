package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/service"
)

//go:generate mockery --name UserService --output ../mocks
type UserService interface {
	Create(ctx context.Context, scope domain.TenantScope, input service.UserCreateInput) (*domain.User, error)
	Get(ctx context.Context, scope domain.TenantScope, id string) (*domain.User, error)
	List(ctx context.Context, scope domain.TenantScope) ([]domain.User, error)
	Update(ctx context.Context, scope domain.TenantScope, id string, input service.UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, scope domain.TenantScope, id, actingUserID string) error
}

type UserHandler struct {
	*BaseHandler
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	user, err := h.service.Create(h.RequestCtx(c), scope, service.UserCreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	users, err := h.service.List(h.RequestCtx(c), scope)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.FromUser(&users[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	user, err := h.service.Get(h.RequestCtx(c), scope, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	user, err := h.service.Update(h.RequestCtx(c), scope, c.Param("id"), service.UserUpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Active:   req.Active,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	scope, ok := h.Scope(c)
	if !ok {
		return
	}

	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), scope, c.Param("id"), identity.UserID); err != nil {
		h.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
