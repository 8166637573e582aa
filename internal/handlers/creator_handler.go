package handlers

import (
	"net/http"

	"github.com/creatorsmela/admin-console/internal/forms"
	"github.com/creatorsmela/admin-console/internal/listview"
	"github.com/creatorsmela/admin-console/internal/middleware"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/services"
	"github.com/creatorsmela/admin-console/internal/session"

	"github.com/gin-gonic/gin"
)

// CreatorHandler serves the creators page. There is no delete route;
// creator profiles are only ever added and edited.
type CreatorHandler struct {
	service *services.CreatorService
	list    *ListController
	resp    *responder
}

// NewCreatorHandler creates the creators page handler
func NewCreatorHandler(service *services.CreatorService, store *session.Store) *CreatorHandler {
	resp := &responder{store: store}
	view := listview.New(service.Columns(), service.FilterKinds())
	return &CreatorHandler{
		service: service,
		list:    NewListController("creators", "Creators", view, service.List, resp),
		resp:    resp,
	}
}

// Register mounts the creators routes
func (h *CreatorHandler) Register(group *gin.RouterGroup) {
	h.list.Register(group)
	group.GET("/names", h.Names)
	group.POST("/add", h.Create)
	group.PUT("/:id", h.Update)
}

// Names godoc
// @Summary Creator name/URL picker options
// @Tags creators
// @Produce json
// @Success 200 {array} models.CreatorNameURL
// @Router /creators/names [get]
func (h *CreatorHandler) Names(c *gin.Context) {
	token := middleware.ContextToken(c)
	names, err := h.service.Names(c.Request.Context(), token)
	if err != nil {
		h.resp.renderError(c, err, "Error fetching creator names")
		return
	}
	c.JSON(http.StatusOK, names)
}

// Create godoc
// @Summary Register a creator profile
// @Tags creators
// @Accept json
// @Produce json
// @Param request body models.CreatorRequest true "Creator"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /creators/add [post]
func (h *CreatorHandler) Create(c *gin.Context) {
	var req models.CreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	ok := h.resp.submitForm(c, forms.ModeCreate, creatorDraft(&req), creatorRequired, "Failed to add creator", func() error {
		return h.service.Create(c.Request.Context(), token, &req)
	})
	if !ok {
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching creators")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Creator added"})
}

// Update godoc
// @Summary Update a creator profile
// @Tags creators
// @Accept json
// @Produce json
// @Param id path string true "Creator ID"
// @Param request body models.CreatorRequest true "Creator"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /creators/{id} [put]
func (h *CreatorHandler) Update(c *gin.Context) {
	var req models.CreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	id := c.Param("id")
	token := middleware.ContextToken(c)
	ok := h.resp.submitForm(c, forms.ModeEdit, creatorDraft(&req), creatorRequired, "Failed to update creator", func() error {
		return h.service.Update(c.Request.Context(), token, id, &req)
	})
	if !ok {
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching creators")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Creator updated"})
}

var creatorRequired = []string{"profile_name", "profile_url", "platform", "email"}

func creatorDraft(req *models.CreatorRequest) map[string]string {
	return map[string]string{
		"profile_name": req.ProfileName,
		"profile_url":  req.ProfileURL,
		"platform":     string(req.Platform),
		"email":        req.Email,
		"phone":        req.Phone,
		"category":     req.Category,
		"region":       req.Region,
		"language":     req.Language,
	}
}
