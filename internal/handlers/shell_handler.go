package handlers

import (
	"net/http"

	"github.com/creatorsmela/admin-console/internal/forms"
	"github.com/creatorsmela/admin-console/internal/middleware"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/nav"
	"github.com/creatorsmela/admin-console/internal/session"
	"github.com/creatorsmela/admin-console/internal/upstream"

	"github.com/gin-gonic/gin"
)

// ShellHandler serves the app shell: the role-filtered sidebar, the
// sidebar width preference and the signed-in user's profile.
type ShellHandler struct {
	store  *session.Store
	client *upstream.Client
	resp   *responder
}

// NewShellHandler creates the shell handler
func NewShellHandler(store *session.Store, client *upstream.Client) *ShellHandler {
	return &ShellHandler{
		store:  store,
		client: client,
		resp:   &responder{store: store},
	}
}

// Navigation godoc
// @Summary Sidebar items for the signed-in role
// @Description Only the pages the role may open are listed. An optional path query resolves the active item.
// @Tags shell
// @Produce json
// @Param path query string false "Current path"
// @Success 200 {object} map[string]interface{}
// @Router /navigation [get]
func (h *ShellHandler) Navigation(c *gin.Context) {
	user := middleware.ContextUser(c)
	items := nav.ForRole(user.Role)

	response := gin.H{"items": items, "expanded": h.store.SidebarExpanded()}
	if path := c.Query("path"); path != "" {
		if active, ok := nav.Resolve(path); ok && active.Allows(user.Role) {
			response["active"] = active.EventKey
		}
	}
	c.JSON(http.StatusOK, response)
}

// SidebarPreference godoc
// @Summary Sidebar expansion preference
// @Tags shell
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /preferences/sidebar [get]
func (h *ShellHandler) SidebarPreference(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"expanded": h.store.SidebarExpanded()})
}

// SetSidebarPreference godoc
// @Summary Persist the sidebar expansion preference
// @Tags shell
// @Accept json
// @Produce json
// @Param request body map[string]bool true "Preference"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /preferences/sidebar [put]
func (h *ShellHandler) SetSidebarPreference(c *gin.Context) {
	var req struct {
		Expanded *bool `json:"expanded" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.store.SetSidebarExpanded(*req.Expanded); err != nil {
		h.resp.renderError(c, err, "Failed to persist preference")
		return
	}
	c.JSON(http.StatusOK, gin.H{"expanded": *req.Expanded})
}

// Profile godoc
// @Summary Signed-in user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.User
// @Router /profile [get]
func (h *ShellHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.ContextUser(c))
}

// UpdateProfile godoc
// @Summary Update the signed-in user's profile
// @Description On success the profile is refetched so the session reflects the write
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Router /profile [put]
func (h *ShellHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	draft := map[string]string{"name": req.Name, "email": req.Email, "phone": req.Phone}
	ok := h.resp.submitForm(c, forms.ModeEdit, draft, []string{"name", "email"}, "Failed to update profile", func() error {
		return h.client.UpdateUserProfile(c.Request.Context(), token, &req)
	})
	if !ok {
		return
	}

	user, err := h.client.FetchProfile(c.Request.Context(), token)
	if err != nil {
		h.resp.renderError(c, err, "Error fetching profile")
		return
	}
	h.store.SetUser(user)
	c.JSON(http.StatusOK, user)
}
