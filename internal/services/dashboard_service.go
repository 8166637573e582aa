package services

import (
	"context"
	"fmt"

	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/upstream"
)

// reportDays is how much of the date-wise report the dashboard chart shows
const reportDays = 30

// DashboardService serves the landing-page statistics
type DashboardService struct {
	client *upstream.Client
}

// NewDashboardService creates a dashboard service
func NewDashboardService(client *upstream.Client) *DashboardService {
	return &DashboardService{client: client}
}

// Stats fetches the campaign status summary, trimming the date-wise
// report to the window the chart renders.
func (s *DashboardService) Stats(ctx context.Context, token string) (*models.DashboardStats, error) {
	stats, err := s.client.FetchCampaignStatus(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaign status: %w", err)
	}
	stats.DateWiseVideoReport = stats.LastDays(reportDays)
	return stats, nil
}
