package upstream

import (
	"context"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/models"
)

// AddCreator registers a new creator profile
func (c *Client) AddCreator(ctx context.Context, token string, req *models.CreatorRequest) error {
	return c.do(ctx, http.MethodPost, "/creators/add", token, req, nil)
}

// FetchCreators returns the full creator collection
func (c *Client) FetchCreators(ctx context.Context, token string) ([]models.Creator, error) {
	var creators []models.Creator
	if err := c.do(ctx, http.MethodGet, "/creators/all", token, nil, &creators); err != nil {
		return nil, err
	}
	return creators, nil
}

// FetchCreatorNames returns the reduced name/url projection
func (c *Client) FetchCreatorNames(ctx context.Context, token string) ([]models.CreatorNameURL, error) {
	var creators []models.CreatorNameURL
	if err := c.do(ctx, http.MethodGet, "/creators/names-urls", token, nil, &creators); err != nil {
		return nil, err
	}
	return creators, nil
}

// UpdateCreator edits a creator profile. There is no delete: creator
// records are never removed through the dashboard.
func (c *Client) UpdateCreator(ctx context.Context, token, id string, req *models.CreatorRequest) error {
	return c.do(ctx, http.MethodPut, "/creators/update/"+id, token, req, nil)
}
