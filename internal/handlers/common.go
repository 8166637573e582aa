package handlers

import (
	"errors"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/forms"
	"github.com/creatorsmela/admin-console/internal/session"
	"github.com/creatorsmela/admin-console/internal/upstream"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// responder renders errors the way every page does: auth failures clear
// the session and point at the login screen, API failures become a
// transient error with prior state retained, validation failures never
// reach the API.
type responder struct {
	store *session.Store
}

// renderError maps an error from a service or the API gateway onto an
// HTTP response.
func (r *responder) renderError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, upstream.ErrUnauthorized) {
		r.store.Logout()
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Session expired",
			"redirect": "/auth/Login",
		})
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status >= 500 {
			sentry.CaptureException(err)
			c.JSON(http.StatusBadGateway, gin.H{"error": fallback, "details": apiErr.Message})
			return
		}
		c.JSON(status, gin.H{"error": apiErr.Message})
		return
	}

	sentry.CaptureException(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
}

// submitForm runs a mutation through the modal-editor lifecycle.
// Validation failures respond 400 with the draft echoed back; mutation
// failures keep the draft intact in the error response, mirroring the
// dialog staying open. Returns true when the mutation succeeded.
func (r *responder) submitForm(c *gin.Context, mode forms.Mode, draft map[string]string, required []string, fallback string, mutate func() error) bool {
	editor := forms.NewEditor()
	editor.Open(mode, draft)

	err := editor.Submit(required, mutate)
	if err == nil {
		return true
	}

	var vErr *forms.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "draft": editor.Draft()})
		return false
	}

	r.renderError(c, err, fallback)
	return false
}
