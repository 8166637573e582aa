package handlers

import (
	"net/http"

	"github.com/creatorsmela/admin-console/internal/listview"
	"github.com/creatorsmela/admin-console/internal/middleware"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/services"
	"github.com/creatorsmela/admin-console/internal/session"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payments page, a second projection of the
// video collection focused on settlement.
type PaymentHandler struct {
	service *services.VideoService
	list    *ListController
	resp    *responder
}

// NewPaymentHandler creates the payments page handler
func NewPaymentHandler(service *services.VideoService, store *session.Store) *PaymentHandler {
	resp := &responder{store: store}
	view := listview.New(service.PaymentColumns(), service.PaymentFilterKinds())
	return &PaymentHandler{
		service: service,
		list:    NewListController("payments", "Payments", view, service.List, resp),
		resp:    resp,
	}
}

// Register mounts the payments routes
func (h *PaymentHandler) Register(group *gin.RouterGroup) {
	h.list.Register(group)
	group.PUT("/status", h.UpdateStatus)
}

// UpdateStatus godoc
// @Summary Update a video's payment status
// @Tags payments
// @Accept json
// @Produce json
// @Param request body models.UpdatePaymentStatusRequest true "Status change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /payments/status [put]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	if err := h.service.UpdatePayment(c.Request.Context(), token, req.VideoID, req.PaymentStatus); err != nil {
		h.resp.renderError(c, err, "Failed to update payment status")
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching payments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
}
