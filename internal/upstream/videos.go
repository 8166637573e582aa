package upstream

import (
	"context"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/models"
)

// FetchVideos returns the full video collection
func (c *Client) FetchVideos(ctx context.Context, token string) ([]models.Video, error) {
	var videos []models.Video
	if err := c.do(ctx, http.MethodGet, "/videos", token, nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// CreateVideo creates a video record
func (c *Client) CreateVideo(ctx context.Context, token string, req *models.VideoRequest) error {
	return c.do(ctx, http.MethodPost, "/videos", token, req, nil)
}

// UpdateVideo edits a video record
func (c *Client) UpdateVideo(ctx context.Context, token, id string, req *models.VideoRequest) error {
	return c.do(ctx, http.MethodPut, "/videos/"+id, token, req, nil)
}

// DeleteVideo removes a video by id
func (c *Client) DeleteVideo(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/videos/"+id, token, nil, nil)
}

// UpdatePaymentStatus sets a video's payment status. The API expects
// its own done/request/reject vocabulary, so the canonical status is
// translated on the way out.
func (c *Client) UpdatePaymentStatus(ctx context.Context, token, videoID string, status models.PaymentStatus) error {
	body := map[string]string{
		"id":             videoID,
		"payment_status": status.UpstreamValue(),
	}
	return c.do(ctx, http.MethodPut, "/videos/payment/update", token, body, nil)
}

// SendConfirmationMail submits the confirmation email for a video's
// deliverables, moving it to the sent-for-approval state.
func (c *Client) SendConfirmationMail(ctx context.Context, token, videoID string, deliverables *models.Deliverables) error {
	body := struct {
		VideoID      string               `json:"video_id"`
		Deliverables *models.Deliverables `json:"deliverables,omitempty"`
	}{VideoID: videoID, Deliverables: deliverables}
	return c.do(ctx, http.MethodPost, "/campaigns/confirmsent", token, body, nil)
}

// ConfirmMailSent records the approval of an already-sent confirmation
// mail, moving the video to the approved state.
func (c *Client) ConfirmMailSent(ctx context.Context, token, videoID string) error {
	body := map[string]string{"video_id": videoID}
	return c.do(ctx, http.MethodPost, "/campaigns/confirmsent/approve", token, body, nil)
}
