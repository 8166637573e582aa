package models

import (
	"bytes"
	"fmt"
)

// VideoStatus is the publication state of a promotional video
type VideoStatus string

const (
	VideoLive      VideoStatus = "live"
	VideoProgress  VideoStatus = "progress"
	VideoCancelled VideoStatus = "cancelled"
)

// Valid reports whether the status is a known publication state
func (s VideoStatus) Valid() bool {
	switch s {
	case VideoLive, VideoProgress, VideoCancelled:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a video's creator payment.
//
// The remote API historically serves two vocabularies for the same
// field: done/request/reject on some endpoints and paid/pending/overdue
// on others. The console canonicalizes to paid/pending/rejected on
// decode and translates back to the done/request/reject wire values on
// writes, since that is what the payment-update endpoint accepts.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentPending  PaymentStatus = "pending"
	PaymentRejected PaymentStatus = "rejected"
)

// Valid reports whether the status is one of the canonical values
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentRejected:
		return true
	}
	return false
}

// canonicalPaymentStatus maps every observed wire value to its
// canonical form. Unknown values pass through unchanged.
func canonicalPaymentStatus(raw string) PaymentStatus {
	switch raw {
	case "done", "paid":
		return PaymentPaid
	case "request", "pending":
		return PaymentPending
	case "reject", "overdue", "rejected":
		return PaymentRejected
	}
	return PaymentStatus(raw)
}

// UnmarshalJSON implements json.Unmarshaler
func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	*s = canonicalPaymentStatus(raw)
	return nil
}

// UpstreamValue returns the wire value the payment-update endpoint expects
func (s PaymentStatus) UpstreamValue() string {
	switch s {
	case PaymentPaid:
		return "done"
	case PaymentPending:
		return "request"
	case PaymentRejected:
		return "reject"
	}
	return string(s)
}

// Placement is a promotional-link placement slot. The numeric codes are
// the API's own encoding of the placement options.
type Placement int

const (
	PlacementDescription   Placement = 1
	PlacementAboutSection  Placement = 2
	PlacementPinnedComment Placement = 3
	PlacementBio           Placement = 4
	PlacementStory         Placement = 5
)

// Label returns the display name shown for a placement
func (p Placement) Label() string {
	switch p {
	case PlacementDescription:
		return "Description"
	case PlacementAboutSection:
		return "About Section"
	case PlacementPinnedComment:
		return "Pinned Comment"
	case PlacementBio:
		return "Bio"
	case PlacementStory:
		return "Story"
	}
	return "Unknown Deliverable"
}

// AllowedPlacements returns the placement options selectable for a
// platform: YouTube offers description, pinned comment and the about
// section; Instagram offers bio and story.
func AllowedPlacements(platform Platform) []Placement {
	switch platform {
	case PlatformYoutube:
		return []Placement{PlacementDescription, PlacementPinnedComment, PlacementAboutSection}
	case PlatformInstagram:
		return []Placement{PlacementBio, PlacementStory}
	}
	return nil
}

// Deliverables is the promotional work committed for a video
type Deliverables struct {
	Videos           int         `json:"videos"`
	Posts            int         `json:"posts"`
	PromotionalLinks []Placement `json:"promotionalLink"`
}

// MailState is the position of a video in the mail-approval workflow
type MailState string

const (
	MailNotSent         MailState = "not_sent"
	MailSentForApproval MailState = "sent_for_approval"
	MailApproved        MailState = "approved"
)

// Video represents a promotional video as served by the remote API.
// The mail_aproval key preserves the API's spelling.
type Video struct {
	ID            string        `json:"video_id"`
	ProfileURL    string        `json:"profile_url"`
	VideoURL      string        `json:"video_url"`
	CampaignID    string        `json:"campaign_id"`
	CampaignName  string        `json:"campaign_name"`
	Brand         string        `json:"brand"`
	VideoStatus   VideoStatus   `json:"video_status"`
	LiveDate      string        `json:"live_date"`
	BrandPrice    float64       `json:"brand_price"`
	Commission    float64       `json:"commission"`
	CreatorPrice  float64       `json:"creator_price"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Deliverables  Deliverables  `json:"deliverables"`
	Platform      Platform      `json:"platform"`
	CreatorEmail  string        `json:"creator_email"`
	MailApproval  Flag          `json:"mail_aproval"`
	IsAlreadySent Flag          `json:"is_already_sent"`
}

// MailState derives the workflow position from the two wire flags
func (v Video) MailState() MailState {
	switch {
	case !v.IsAlreadySent.Bool():
		return MailNotSent
	case v.MailApproval.Bool():
		return MailApproved
	default:
		return MailSentForApproval
	}
}

// RowID implements listview.Row
func (v Video) RowID() string {
	return v.ID
}

// Field implements listview.Row
func (v Video) Field(key string) any {
	switch key {
	case "video_id":
		return v.ID
	case "profile_url":
		return v.ProfileURL
	case "video_url":
		return v.VideoURL
	case "campaign_id":
		return v.CampaignID
	case "campaign_name":
		return v.CampaignName
	case "brand":
		return v.Brand
	case "video_status":
		return string(v.VideoStatus)
	case "live_date":
		return v.LiveDate
	case "brand_price":
		return v.BrandPrice
	case "commission":
		return v.Commission
	case "creator_price":
		return v.CreatorPrice
	case "payment_status":
		return string(v.PaymentStatus)
	case "platform":
		return string(v.Platform)
	case "creator_email":
		return v.CreatorEmail
	case "mail_state":
		return string(v.MailState())
	case "deliverables":
		return v.DeliverableSummary()
	}
	return nil
}

// DeliverableSummary renders the deliverables as a single cell value
func (v Video) DeliverableSummary() string {
	s := fmt.Sprintf("%d videos, %d posts", v.Deliverables.Videos, v.Deliverables.Posts)
	for _, p := range v.Deliverables.PromotionalLinks {
		s += ", " + p.Label()
	}
	return s
}

// VideoRequest is the create/update payload for a video
type VideoRequest struct {
	ProfileURL    string        `json:"profile_url"`
	VideoURL      string        `json:"video_url"`
	CampaignID    string        `json:"campaign_id"`
	Brand         string        `json:"brand"`
	VideoStatus   VideoStatus   `json:"video_status"`
	LiveDate      string        `json:"live_date"`
	BrandPrice    float64       `json:"brand_price"`
	Commission    float64       `json:"commission"`
	CreatorPrice  float64       `json:"creator_price"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Platform      Platform      `json:"platform"`
	CreatorEmail  string        `json:"creator_email"`
}

// UpdatePaymentStatusRequest changes a video's payment status
type UpdatePaymentStatusRequest struct {
	VideoID       string        `json:"id" binding:"required"`
	PaymentStatus PaymentStatus `json:"payment_status" binding:"required"`
}

// SendConfirmationRequest is the "Send Confirmation Email" form: the
// deliverable counts plus the promotional-link placements chosen for
// the video's platform.
type SendConfirmationRequest struct {
	Videos           int         `json:"videos"`
	Posts            int         `json:"posts"`
	PromotionalLinks []Placement `json:"promotionalLink"`
}
