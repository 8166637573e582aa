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

// MailHandler serves the mail page: the video collection projected onto
// the confirmation-mail workflow.
type MailHandler struct {
	service *services.VideoService
	list    *ListController
	resp    *responder
}

// NewMailHandler creates the mail page handler
func NewMailHandler(service *services.VideoService, store *session.Store) *MailHandler {
	resp := &responder{store: store}
	view := listview.New(service.MailColumns(), service.MailFilterKinds())
	return &MailHandler{
		service: service,
		list:    NewListController("mail", "Mail", view, service.List, resp),
		resp:    resp,
	}
}

// Register mounts the mail page routes
func (h *MailHandler) Register(group *gin.RouterGroup) {
	h.list.Register(group)
	group.GET("/:id/placements", h.Placements)
}

// Placements godoc
// @Summary Placement options for a video's platform
// @Description The send-confirmation form only offers the placements the video's platform supports
// @Tags mail
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /mail/{id}/placements [get]
func (h *MailHandler) Placements(c *gin.Context) {
	token := middleware.ContextToken(c)
	video, err := h.service.Get(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		if err == services.ErrVideoNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.resp.renderError(c, err, "Error fetching video")
		return
	}

	allowed := models.AllowedPlacements(video.Platform)
	options := make([]gin.H, len(allowed))
	for i, p := range allowed {
		options[i] = gin.H{"value": p, "label": p.Label()}
	}
	c.JSON(http.StatusOK, gin.H{
		"platform":   video.Platform,
		"mail_state": video.MailState(),
		"placements": options,
	})
}
