package upstream

import (
	"context"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/models"
)

// FetchCampaigns returns the full campaign collection
func (c *Client) FetchCampaigns(ctx context.Context, token string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := c.do(ctx, http.MethodGet, "/campaigns", token, nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// CreateCampaign creates a campaign
func (c *Client) CreateCampaign(ctx context.Context, token string, req *models.CampaignRequest) error {
	return c.do(ctx, http.MethodPost, "/campaigns/add", token, req, nil)
}

// UpdateCampaign edits a campaign. The API identifies the record by
// the campaign_id carried in the body.
func (c *Client) UpdateCampaign(ctx context.Context, token, id string, req *models.CampaignRequest) error {
	body := struct {
		ID string `json:"campaign_id"`
		*models.CampaignRequest
	}{ID: id, CampaignRequest: req}
	return c.do(ctx, http.MethodPut, "/campaigns/update", token, body, nil)
}

// DeleteCampaign removes a campaign by id
func (c *Client) DeleteCampaign(ctx context.Context, token, id string) error {
	body := map[string]string{"campaign_id": id}
	return c.do(ctx, http.MethodPost, "/campaigns/del", token, body, nil)
}

// FetchCampaignStatus returns the dashboard statistics summary
func (c *Client) FetchCampaignStatus(ctx context.Context, token string) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/campaigns/status", token, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
