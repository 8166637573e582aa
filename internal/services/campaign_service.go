package services

import (
	"context"
	"fmt"

	"github.com/creatorsmela/admin-console/internal/listview"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/upstream"
)

// CampaignService orchestrates campaign operations against the remote API
type CampaignService struct {
	client *upstream.Client
}

// NewCampaignService creates a campaign service
func NewCampaignService(client *upstream.Client) *CampaignService {
	return &CampaignService{client: client}
}

// Columns declares the campaign table
func (s *CampaignService) Columns() []listview.Column {
	return []listview.Column{
		{Key: "campaign_id", Label: "Campaign ID"},
		{Key: "name", Label: "Name"},
		{Key: "brand", Label: "Brand"},
		{Key: "description", Label: "Description"},
		{Key: "start_date", Label: "Start Date"},
		{Key: "end_date", Label: "End Date"},
		{Key: "budget", Label: "Budget"},
		{Key: "status", Label: "Status"},
	}
}

// FilterKinds declares the filterable campaign fields
func (s *CampaignService) FilterKinds() map[string]listview.FilterKind {
	return map[string]listview.FilterKind{
		"name":   listview.Text,
		"brand":  listview.Text,
		"status": listview.Enum,
	}
}

// List fetches the full campaign collection
func (s *CampaignService) List(ctx context.Context, token string) ([]listview.Row, error) {
	campaigns, err := s.client.FetchCampaigns(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	rows := make([]listview.Row, len(campaigns))
	for i, c := range campaigns {
		rows[i] = c
	}
	return rows, nil
}

// Create adds a campaign
func (s *CampaignService) Create(ctx context.Context, token string, req *models.CampaignRequest) error {
	if req.Status != "" && !req.Status.Valid() {
		return fmt.Errorf("invalid campaign status: %q", req.Status)
	}
	return s.client.CreateCampaign(ctx, token, req)
}

// Update edits a campaign
func (s *CampaignService) Update(ctx context.Context, token, id string, req *models.CampaignRequest) error {
	if req.Status != "" && !req.Status.Valid() {
		return fmt.Errorf("invalid campaign status: %q", req.Status)
	}
	return s.client.UpdateCampaign(ctx, token, id, req)
}

// Delete removes a campaign by id
func (s *CampaignService) Delete(ctx context.Context, token, id string) error {
	return s.client.DeleteCampaign(ctx, token, id)
}
