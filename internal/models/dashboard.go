package models

// BestUser is the top contributor shown on the dashboard
type BestUser struct {
	Name        string `json:"name"`
	TotalVideos int    `json:"total_videos"`
}

// DateVideoCount is one point of the date-wise video report
type DateVideoCount struct {
	Date       string `json:"date"`
	VideoCount int    `json:"video_count"`
}

// DashboardStats is the campaign status summary served by the remote API
type DashboardStats struct {
	TotalActiveCampaigns  int              `json:"total_active_campaigns"`
	TotalVideos           int              `json:"total_videos"`
	TotalInProgressVideos int              `json:"total_in_progress_videos"`
	BestUser              BestUser         `json:"best_user"`
	DateWiseVideoReport   []DateVideoCount `json:"date_wise_video_report"`
}

// LastDays returns the trailing n entries of the date-wise report,
// which is what the dashboard chart renders.
func (s *DashboardStats) LastDays(n int) []DateVideoCount {
	if len(s.DateWiseVideoReport) <= n {
		return s.DateWiseVideoReport
	}
	return s.DateWiseVideoReport[len(s.DateWiseVideoReport)-n:]
}
