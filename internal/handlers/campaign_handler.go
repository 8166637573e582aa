package handlers

import (
	"fmt"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/forms"
	"github.com/creatorsmela/admin-console/internal/listview"
	"github.com/creatorsmela/admin-console/internal/middleware"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/services"
	"github.com/creatorsmela/admin-console/internal/session"

	"github.com/gin-gonic/gin"
)

// CampaignHandler serves the campaigns page
type CampaignHandler struct {
	service *services.CampaignService
	list    *ListController
	resp    *responder
}

// NewCampaignHandler creates the campaigns page handler
func NewCampaignHandler(service *services.CampaignService, store *session.Store) *CampaignHandler {
	resp := &responder{store: store}
	view := listview.New(service.Columns(), service.FilterKinds())
	return &CampaignHandler{
		service: service,
		list:    NewListController("campaigns", "Campaigns", view, service.List, resp),
		resp:    resp,
	}
}

// Register mounts the campaigns routes
func (h *CampaignHandler) Register(group *gin.RouterGroup) {
	h.list.Register(group)
	group.POST("/add", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// Create godoc
// @Summary Create a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body models.CampaignRequest true "Campaign"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /campaigns/add [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	ok := h.resp.submitForm(c, forms.ModeCreate, campaignDraft(&req), campaignRequired, "Failed to create campaign", func() error {
		return h.service.Create(c.Request.Context(), token, &req)
	})
	if !ok {
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching campaigns")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Campaign created"})
}

// Update godoc
// @Summary Update a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body models.CampaignRequest true "Campaign"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	id := c.Param("id")
	token := middleware.ContextToken(c)
	ok := h.resp.submitForm(c, forms.ModeEdit, campaignDraft(&req), campaignRequired, "Failed to update campaign", func() error {
		return h.service.Update(c.Request.Context(), token, id, &req)
	})
	if !ok {
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching campaigns")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign updated"})
}

// Delete godoc
// @Summary Delete a campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]interface{}
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	token := middleware.ContextToken(c)
	if err := h.service.Delete(c.Request.Context(), token, c.Param("id")); err != nil {
		h.resp.renderError(c, err, "Failed to delete campaign")
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching campaigns")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
}

var campaignRequired = []string{"name", "brand", "status"}

func campaignDraft(req *models.CampaignRequest) map[string]string {
	return map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"brand":       req.Brand,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
		"budget":      fmt.Sprintf("%v", req.Budget),
		"status":      string(req.Status),
	}
}
