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

// VideoHandler serves the videos page: CRUD plus the mail-approval
// workflow actions.
type VideoHandler struct {
	service *services.VideoService
	list    *ListController
	resp    *responder
}

// NewVideoHandler creates the videos page handler
func NewVideoHandler(service *services.VideoService, store *session.Store) *VideoHandler {
	resp := &responder{store: store}
	view := listview.New(service.Columns(), service.FilterKinds())
	return &VideoHandler{
		service: service,
		list:    NewListController("videos", "Videos", view, service.List, resp),
		resp:    resp,
	}
}

// Register mounts the videos routes
func (h *VideoHandler) Register(group *gin.RouterGroup) {
	h.list.Register(group)
	group.POST("/add", h.Create)
	group.PUT("/payment", h.UpdatePayment)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/mail/send", h.SendMail)
	group.POST("/:id/mail/confirm", h.ConfirmMail)
}

// UpdatePayment godoc
// @Summary Update a video's payment status
// @Tags videos
// @Accept json
// @Produce json
// @Param request body models.UpdatePaymentStatusRequest true "Status change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /videos/payment [put]
func (h *VideoHandler) UpdatePayment(c *gin.Context) {
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
		h.resp.renderError(c, err, "Error fetching videos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
}

// Create godoc
// @Summary Create a video
// @Tags videos
// @Accept json
// @Produce json
// @Param request body models.VideoRequest true "Video"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /videos/add [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req models.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	ok := h.resp.submitForm(c, forms.ModeCreate, videoDraft(&req), videoRequired, "Failed to create video", func() error {
		return h.service.Create(c.Request.Context(), token, &req)
	})
	if !ok {
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching videos")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Video created"})
}

// Update godoc
// @Summary Update a video
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body models.VideoRequest true "Video"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	var req models.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	id := c.Param("id")
	token := middleware.ContextToken(c)
	ok := h.resp.submitForm(c, forms.ModeEdit, videoDraft(&req), videoRequired, "Failed to update video", func() error {
		return h.service.Update(c.Request.Context(), token, id, &req)
	})
	if !ok {
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching videos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video updated"})
}

// Delete godoc
// @Summary Delete a video
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	token := middleware.ContextToken(c)
	if err := h.service.Delete(c.Request.Context(), token, c.Param("id")); err != nil {
		h.resp.renderError(c, err, "Failed to delete video")
		return
	}

	if err := h.list.Reload(c.Request.Context(), token); err != nil {
		h.resp.renderError(c, err, "Error fetching videos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

// SendMail godoc
// @Summary Send the confirmation mail for a video
// @Description Submits the deliverables form and moves the video to sent-for-approval. A video whose mail is already out is rejected.
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body models.SendConfirmationRequest true "Deliverables"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /videos/{id}/mail/send [post]
func (h *VideoHandler) SendMail(c *gin.Context) {
	var req models.SendConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	token := middleware.ContextToken(c)
	video, err := h.service.Get(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		h.renderMailError(c, err)
		return
	}

	if err := h.service.SendConfirmation(c.Request.Context(), token, video, &req); err != nil {
		h.renderMailError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Confirmation mail sent"})
}

// ConfirmMail godoc
// @Summary Approve an already-sent confirmation mail
// @Description Moves the video from sent-for-approval to approved. The workflow never moves backwards.
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /videos/{id}/mail/confirm [post]
func (h *VideoHandler) ConfirmMail(c *gin.Context) {
	token := middleware.ContextToken(c)
	video, err := h.service.Get(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		h.renderMailError(c, err)
		return
	}

	if err := h.service.ConfirmSent(c.Request.Context(), token, video); err != nil {
		h.renderMailError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Confirmation mail approved"})
}

// renderMailError maps the workflow errors onto their statuses before
// falling back to the shared renderer.
func (h *VideoHandler) renderMailError(c *gin.Context, err error) {
	switch err {
	case services.ErrVideoNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.ErrAlreadySent, services.ErrNotSent, services.ErrAlreadyApproved:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.resp.renderError(c, err, "Mail workflow failed")
	}
}

var videoRequired = []string{"profile_url", "video_url", "campaign_id", "video_status"}

func videoDraft(req *models.VideoRequest) map[string]string {
	return map[string]string{
		"profile_url":    req.ProfileURL,
		"video_url":      req.VideoURL,
		"campaign_id":    req.CampaignID,
		"video_status":   string(req.VideoStatus),
		"live_date":      req.LiveDate,
		"brand_price":    fmt.Sprintf("%v", req.BrandPrice),
		"commission":     fmt.Sprintf("%v", req.Commission),
		"creator_price":  fmt.Sprintf("%v", req.CreatorPrice),
		"payment_status": string(req.PaymentStatus),
		"platform":       string(req.Platform),
		"creator_email":  req.CreatorEmail,
	}
}
