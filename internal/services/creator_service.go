package services

import (
	"context"
	"fmt"

	"github.com/creatorsmela/admin-console/internal/listview"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/upstream"
)

// CreatorService orchestrates creator operations against the remote
// API. Creators are never deleted through the dashboard.
type CreatorService struct {
	client *upstream.Client
}

// NewCreatorService creates a creator service
func NewCreatorService(client *upstream.Client) *CreatorService {
	return &CreatorService{client: client}
}

// Columns declares the creator table
func (s *CreatorService) Columns() []listview.Column {
	return []listview.Column{
		{Key: "profile_name", Label: "Profile Name"},
		{Key: "profile_url", Label: "Profile URL"},
		{Key: "youtube_url", Label: "YouTube URL"},
		{Key: "instagram_url", Label: "Instagram URL"},
		{Key: "followers", Label: "Followers"},
		{Key: "phone", Label: "Phone"},
		{Key: "email", Label: "Email"},
		{Key: "platform", Label: "Platform"},
		{Key: "category", Label: "Category"},
		{Key: "region", Label: "Region"},
		{Key: "language", Label: "Language"},
	}
}

// FilterKinds declares the filterable creator fields
func (s *CreatorService) FilterKinds() map[string]listview.FilterKind {
	return map[string]listview.FilterKind{
		"profile_name": listview.Text,
		"email":        listview.Text,
		"category":     listview.Text,
		"region":       listview.Text,
		"language":     listview.Text,
		"platform":     listview.Enum,
	}
}

// List fetches the full creator collection
func (s *CreatorService) List(ctx context.Context, token string) ([]listview.Row, error) {
	creators, err := s.client.FetchCreators(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch creators: %w", err)
	}
	rows := make([]listview.Row, len(creators))
	for i, c := range creators {
		rows[i] = c
	}
	return rows, nil
}

// Names returns the reduced projection used by campaign/video pickers
func (s *CreatorService) Names(ctx context.Context, token string) ([]models.CreatorNameURL, error) {
	return s.client.FetchCreatorNames(ctx, token)
}

// Create registers a creator profile
func (s *CreatorService) Create(ctx context.Context, token string, req *models.CreatorRequest) error {
	return s.client.AddCreator(ctx, token, req)
}

// Update edits a creator profile
func (s *CreatorService) Update(ctx context.Context, token, id string, req *models.CreatorRequest) error {
	return s.client.UpdateCreator(ctx, token, id, req)
}
