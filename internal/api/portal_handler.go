package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PortalHandler is the unauthenticated client portal: the work order token
// is the only credential.
type PortalHandler struct {
	*BaseHandler
	service WorkOrderService
}

func NewPortalHandler(service WorkOrderService) *PortalHandler {
	return &PortalHandler{service: service}
}

func (h *PortalHandler) GetOrder(c *gin.Context) {
	order, err := h.service.PortalGet(h.RequestCtx(c), c.Param("token"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *PortalHandler) ApproveOrder(c *gin.Context) {
	order, err := h.service.PortalApprove(h.RequestCtx(c), c.Param("token"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
