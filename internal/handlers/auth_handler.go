package handlers

import (
	"errors"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/forms"
	"github.com/creatorsmela/admin-console/internal/middleware"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/session"
	"github.com/creatorsmela/admin-console/internal/upstream"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, signup and the password flows
type AuthHandler struct {
	store  *session.Store
	client *upstream.Client
	resp   *responder
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(store *session.Store, client *upstream.Client) *AuthHandler {
	return &AuthHandler{
		store:  store,
		client: client,
		resp:   &responder{store: store},
	}
}

// Login godoc
// @Summary Sign in
// @Description Authenticate against the CreatorsMela API and open the console session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	user, err := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Rejected credentials are not an expired session; surface the
		// API's answer as-is.
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
			return
		}
		h.resp.renderError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, h.sessionResponse(user))
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, gin.H{"redirect": "/auth/Login"})
}

// Signup godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.client.Signup(c.Request.Context(), &req); err != nil {
		h.resp.renderError(c, err, "Signup failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created"})
}

// ForgotPassword godoc
// @Summary Request a password reset mail
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.client.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.resp.renderError(c, err, "Failed to request password reset")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reset mail sent"})
}

// ResetPassword godoc
// @Summary Complete a password reset
// @Description The password and its confirmation must match; mismatches never reach the API
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Reset request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := forms.PasswordsMatch(req.Password, req.ConfirmPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.client.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.resp.renderError(c, err, "Failed to reset password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset"})
}

// ChangePassword godoc
// @Summary Change the signed-in user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Change request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	if err := h.client.ChangePassword(c.Request.Context(), token, &req); err != nil {
		h.resp.renderError(c, err, "Failed to change password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// Session godoc
// @Summary Console session state
// @Description The shell polls this to decide between the loader, the login screen and the app
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionResponse(h.store.User()))
}

func (h *AuthHandler) sessionResponse(user *models.User) models.SessionResponse {
	return models.SessionResponse{
		User:            user,
		Loading:         h.store.Loading(),
		Authenticated:   user != nil,
		SidebarExpanded: h.store.SidebarExpanded(),
	}
}
