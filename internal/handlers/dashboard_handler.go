package handlers

import (
	"net/http"

	"github.com/creatorsmela/admin-console/internal/middleware"
	"github.com/creatorsmela/admin-console/internal/services"
	"github.com/creatorsmela/admin-console/internal/session"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing-page statistics
type DashboardHandler struct {
	service *services.DashboardService
	resp    *responder
}

// NewDashboardHandler creates the dashboard handler
func NewDashboardHandler(service *services.DashboardService, store *session.Store) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		resp:    &responder{store: store},
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Campaign and video counts, the best performing user and the recent date-wise video chart
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	token := middleware.ContextToken(c)
	stats, err := h.service.Stats(c.Request.Context(), token)
	if err != nil {
		h.resp.renderError(c, err, "Error fetching dashboard statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
