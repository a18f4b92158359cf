package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/service"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Register(ctx context.Context, input service.RegisterInput) (*domain.Tenant, *domain.User, string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	user, token, err := h.service.Login(h.RequestCtx(c), req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.FromUser(user),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, user, token, err := h.service.Register(h.RequestCtx(c), service.RegisterInput{
		TenantName: req.TenantName,
		Phone:      req.Phone,
		UserName:   req.UserName,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Token:  token,
		Tenant: *tenant,
		User:   dto.FromUser(user),
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	user, err := h.service.Profile(h.RequestCtx(c), identity.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}
