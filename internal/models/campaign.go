package models

// CampaignStatus is the lifecycle stage of a campaign
type CampaignStatus string

const (
	CampaignUpcoming CampaignStatus = "upcoming"
	CampaignActive   CampaignStatus = "active"
	CampaignDone     CampaignStatus = "done"
)

// Valid reports whether the status is a known lifecycle stage
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignUpcoming, CampaignActive, CampaignDone:
		return true
	}
	return false
}

// Campaign represents a marketing campaign as served by the remote API.
// Dates are ISO date strings in the API's own format and are not
// reinterpreted by the console.
type Campaign struct {
	ID          string         `json:"campaign_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Brand       string         `json:"brand"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Budget      float64        `json:"budget"`
	Status      CampaignStatus `json:"status"`
}

// RowID implements listview.Row
func (c Campaign) RowID() string {
	return c.ID
}

// Field implements listview.Row
func (c Campaign) Field(key string) any {
	switch key {
	case "campaign_id":
		return c.ID
	case "name":
		return c.Name
	case "description":
		return c.Description
	case "brand":
		return c.Brand
	case "start_date":
		return c.StartDate
	case "end_date":
		return c.EndDate
	case "budget":
		return c.Budget
	case "status":
		return string(c.Status)
	}
	return nil
}

// CampaignRequest is the create/update payload for a campaign
type CampaignRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Brand       string         `json:"brand"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Budget      float64        `json:"budget"`
	Status      CampaignStatus `json:"status"`
}
