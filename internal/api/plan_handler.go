package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/service"
)

// PlanHandler is the super-admin plan administration.
type PlanHandler struct {
	*BaseHandler
	service PlanService
}

func NewPlanHandler(service PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.service.List(h.RequestCtx(c), false)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.service.Get(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	plan, err := h.service.Create(h.RequestCtx(c), &domain.Plan{
		Name:     req.Name,
		Slug:     req.Slug,
		MaxUsers: req.MaxUsers,
		Price:    req.Price,
		Active:   true,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	plan, err := h.service.Update(h.RequestCtx(c), c.Param("id"), service.PlanUpdateInput{
		Name:     req.Name,
		MaxUsers: req.MaxUsers,
		Price:    req.Price,
		Active:   req.Active,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
