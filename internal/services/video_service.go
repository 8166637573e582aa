package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorsmela/admin-console/internal/listview"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/upstream"

	"github.com/sirupsen/logrus"
)

var (
	// ErrVideoNotFound is returned when an id is not in the collection
	ErrVideoNotFound = errors.New("video not found")

	// ErrAlreadySent blocks re-submitting the confirmation mail form
	ErrAlreadySent = errors.New("confirmation mail already sent")

	// ErrNotSent blocks approving a mail that was never sent
	ErrNotSent = errors.New("confirmation mail not sent yet")

	// ErrAlreadyApproved blocks re-approving; the workflow is one-directional
	ErrAlreadyApproved = errors.New("confirmation mail already approved")
)

// VideoService orchestrates video CRUD, payment-status updates and the
// mail-approval workflow against the remote API.
type VideoService struct {
	client *upstream.Client
}

// NewVideoService creates a video service
func NewVideoService(client *upstream.Client) *VideoService {
	return &VideoService{client: client}
}

// Columns declares the videos table
func (s *VideoService) Columns() []listview.Column {
	return []listview.Column{
		{Key: "video_id", Label: "Video ID"},
		{Key: "profile_url", Label: "Profile URL"},
		{Key: "video_url", Label: "Video URL"},
		{Key: "campaign_name", Label: "Campaign Name"},
		{Key: "brand", Label: "Brand"},
		{Key: "video_status", Label: "Video Status"},
		{Key: "live_date", Label: "Live Date"},
		{Key: "payment_status", Label: "Payment Status"},
		{Key: "brand_price", Label: "Promotion Price"},
		{Key: "commission", Label: "Commission"},
		{Key: "creator_price", Label: "Creator Price"},
	}
}

// FilterKinds declares the filterable video fields
func (s *VideoService) FilterKinds() map[string]listview.FilterKind {
	return map[string]listview.FilterKind{
		"profile_url":    listview.Text,
		"video_url":      listview.Text,
		"brand":          listview.Text,
		"campaign_name":  listview.Enum,
		"video_status":   listview.Enum,
		"payment_status": listview.Enum,
	}
}

// PaymentColumns declares the payments table, a second projection of
// the same video collection.
func (s *VideoService) PaymentColumns() []listview.Column {
	return []listview.Column{
		{Key: "video_id", Label: "Video ID"},
		{Key: "profile_url", Label: "Profile URL"},
		{Key: "video_url", Label: "Video URL"},
		{Key: "creator_email", Label: "Creator Email"},
		{Key: "deliverables", Label: "Deliverables"},
		{Key: "platform", Label: "Platform"},
		{Key: "brand_price", Label: "Promotion Price"},
		{Key: "creator_price", Label: "Creator Price"},
		{Key: "payment_status", Label: "Payment Status"},
	}
}

// PaymentFilterKinds declares the payments page filters
func (s *VideoService) PaymentFilterKinds() map[string]listview.FilterKind {
	return map[string]listview.FilterKind{
		"creator_email":  listview.Text,
		"profile_url":    listview.Text,
		"payment_status": listview.Enum,
	}
}

// MailColumns declares the mail page table
func (s *VideoService) MailColumns() []listview.Column {
	return []listview.Column{
		{Key: "video_id", Label: "Video ID"},
		{Key: "profile_url", Label: "Profile URL"},
		{Key: "video_url", Label: "Video URL"},
		{Key: "creator_email", Label: "Creator Email"},
		{Key: "deliverables", Label: "Deliverables"},
		{Key: "platform", Label: "Platform"},
		{Key: "mail_state", Label: "Mail Status"},
	}
}

// MailFilterKinds declares the mail page filters
func (s *VideoService) MailFilterKinds() map[string]listview.FilterKind {
	return map[string]listview.FilterKind{
		"creator_email": listview.Text,
		"profile_url":   listview.Text,
		"mail_state":    listview.Enum,
	}
}

// List fetches the full video collection
func (s *VideoService) List(ctx context.Context, token string) ([]listview.Row, error) {
	videos, err := s.client.FetchVideos(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}
	rows := make([]listview.Row, len(videos))
	for i, v := range videos {
		rows[i] = v
	}
	return rows, nil
}

// Get finds one video. The API has no single-record endpoint, so this
// works the way every page does: load the collection, pick the row.
func (s *VideoService) Get(ctx context.Context, token, id string) (*models.Video, error) {
	videos, err := s.client.FetchVideos(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}
	for i := range videos {
		if videos[i].ID == id {
			return &videos[i], nil
		}
	}
	return nil, ErrVideoNotFound
}

// Create adds a video. Campaign name and brand are denormalized by the
// API from the referenced campaign at creation time.
func (s *VideoService) Create(ctx context.Context, token string, req *models.VideoRequest) error {
	if err := validateVideoRequest(req); err != nil {
		return err
	}
	return s.client.CreateVideo(ctx, token, req)
}

// Update edits a video
func (s *VideoService) Update(ctx context.Context, token, id string, req *models.VideoRequest) error {
	if err := validateVideoRequest(req); err != nil {
		return err
	}
	return s.client.UpdateVideo(ctx, token, id, req)
}

// Delete removes a video by id
func (s *VideoService) Delete(ctx context.Context, token, id string) error {
	return s.client.DeleteVideo(ctx, token, id)
}

// UpdatePayment sets a video's payment status
func (s *VideoService) UpdatePayment(ctx context.Context, token, videoID string, status models.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid payment status: %q", status)
	}
	return s.client.UpdatePaymentStatus(ctx, token, videoID, status)
}

// SendConfirmation submits the confirmation email for a video,
// transitioning it from not-sent to sent-for-approval. A video whose
// mail is already out cannot be re-submitted. The chosen promotional
// placements must be selectable for the video's platform.
func (s *VideoService) SendConfirmation(ctx context.Context, token string, video *models.Video, req *models.SendConfirmationRequest) error {
	if video.IsAlreadySent.Bool() {
		return ErrAlreadySent
	}
	if req.Videos < 0 || req.Posts < 0 {
		return fmt.Errorf("deliverable counts cannot be negative")
	}

	allowed := models.AllowedPlacements(video.Platform)
	for _, placement := range req.PromotionalLinks {
		if !placementAllowed(placement, allowed) {
			return fmt.Errorf("placement %q is not available on %s", placement.Label(), video.Platform)
		}
	}

	deliverables := &models.Deliverables{
		Videos:           req.Videos,
		Posts:            req.Posts,
		PromotionalLinks: req.PromotionalLinks,
	}
	if err := s.client.SendConfirmationMail(ctx, token, video.ID, deliverables); err != nil {
		return err
	}

	logrus.Infof("Confirmation mail sent for video %s", video.ID)
	return nil
}

// ConfirmSent approves an already-sent confirmation mail, transitioning
// the video to the approved state. There is no unsend or reject.
func (s *VideoService) ConfirmSent(ctx context.Context, token string, video *models.Video) error {
	switch video.MailState() {
	case models.MailNotSent:
		return ErrNotSent
	case models.MailApproved:
		return ErrAlreadyApproved
	}

	if err := s.client.ConfirmMailSent(ctx, token, video.ID); err != nil {
		return err
	}

	logrus.Infof("Confirmation mail approved for video %s", video.ID)
	return nil
}

func placementAllowed(p models.Placement, allowed []models.Placement) bool {
	for _, a := range allowed {
		if a == p {
			return true
		}
	}
	return false
}

func validateVideoRequest(req *models.VideoRequest) error {
	if req.VideoStatus != "" && !req.VideoStatus.Valid() {
		return fmt.Errorf("invalid video status: %q", req.VideoStatus)
	}
	if req.PaymentStatus != "" && !req.PaymentStatus.Valid() {
		return fmt.Errorf("invalid payment status: %q", req.PaymentStatus)
	}
	return nil
}
