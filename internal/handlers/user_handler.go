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

// UserHandler serves the users administration page
type UserHandler struct {
	service *services.UserService
	list    *ListController
	resp    *responder
}

// NewUserHandler creates the users page handler
func NewUserHandler(service *services.UserService, store *session.Store) *UserHandler {
	resp := &responder{store: store}
	view := listview.New(service.Columns(), service.FilterKinds())
	return &UserHandler{
		service: service,
		list:    NewListController("users", "Users", view, service.List, resp),
		resp:    resp,
	}
}

// Register mounts the users routes
func (h *UserHandler) Register(group *gin.RouterGroup) {
	h.list.Register(group)
	group.PUT("/:id", h.Update)
	group.PUT("/:id/terminate", h.Terminate)
	group.PUT("/:id/role", h.AssignRole)
}

// Update godoc
// @Summary Update a user record
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.UpdateUserRequest true "User"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	id := c.Param("id")
	token := middleware.ContextToken(c)
	draft := map[string]string{
		"name":  req.Name,
		"email": req.Email,
		"phone": req.Phone,
		"role":  string(req.Role),
	}
	ok := h.resp.submitForm(c, forms.ModeEdit, draft, []string{"name", "email", "role"}, "Failed to update user", func() error {
		return h.service.Update(c.Request.Context(), token, id, &req)
	})
	if !ok {
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// Terminate godoc
// @Summary Suspend or reactivate an account
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.TerminateUserRequest true "Suspension flag"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /users/{id}/terminate [put]
func (h *UserHandler) Terminate(c *gin.Context) {
	var req models.TerminateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	if err := h.service.SetSuspended(c.Request.Context(), token, c.Param("id"), *req.IsSuspended); err != nil {
		h.resp.renderError(c, err, "Failed to update account status")
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account status updated"})
}

// AssignRole godoc
// @Summary Change an account's role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.AssignRoleRequest true "New role"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /users/{id}/role [put]
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req models.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	if err := h.service.AssignRole(c.Request.Context(), token, c.Param("id"), req.NewRole); err != nil {
		h.resp.renderError(c, err, "Failed to assign role")
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role assigned"})
}
