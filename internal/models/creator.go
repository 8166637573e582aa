package models

// Platform identifies where a creator publishes
type Platform string

const (
	PlatformYoutube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
)

// Creator represents a creator profile as served by the remote API
type Creator struct {
	ID           string   `json:"creator_id"`
	ProfileName  string   `json:"profile_name"`
	ProfileURL   string   `json:"profile_url"`
	YoutubeURL   string   `json:"youtube_url"`
	InstagramURL string   `json:"instagram_url"`
	VideoURL     string   `json:"video_url"`
	Followers    int64    `json:"followers"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Platform     Platform `json:"platform"`
	Category     string   `json:"category"`
	Region       string   `json:"region"`
	Language     string   `json:"language"`
	IsExclusive  Flag     `json:"is_exclusive"`
}

// RowID implements listview.Row
func (c Creator) RowID() string {
	return c.ID
}

// Field implements listview.Row
func (c Creator) Field(key string) any {
	switch key {
	case "creator_id":
		return c.ID
	case "profile_name":
		return c.ProfileName
	case "profile_url":
		return c.ProfileURL
	case "youtube_url":
		return c.YoutubeURL
	case "instagram_url":
		return c.InstagramURL
	case "video_url":
		return c.VideoURL
	case "followers":
		return c.Followers
	case "phone":
		return c.Phone
	case "email":
		return c.Email
	case "platform":
		return string(c.Platform)
	case "category":
		return c.Category
	case "region":
		return c.Region
	case "language":
		return c.Language
	case "is_exclusive":
		return c.IsExclusive.Bool()
	}
	return nil
}

// CreatorRequest is the create/update payload for a creator profile
type CreatorRequest struct {
	ProfileName  string   `json:"profile_name"`
	ProfileURL   string   `json:"profile_url"`
	YoutubeURL   string   `json:"youtube_url"`
	InstagramURL string   `json:"instagram_url"`
	VideoURL     string   `json:"video_url"`
	Followers    int64    `json:"followers"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Platform     Platform `json:"platform"`
	Category     string   `json:"category"`
	Region       string   `json:"region"`
	Language     string   `json:"language"`
	IsExclusive  Flag     `json:"is_exclusive"`
}

// CreatorNameURL is the reduced creator projection used by pickers
type CreatorNameURL struct {
	ID          string `json:"creator_id"`
	ProfileName string `json:"profile_name"`
	ProfileURL  string `json:"profile_url"`
}
