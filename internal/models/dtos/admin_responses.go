package dtos

// DashboardStats is the aggregate block served by the admin dashboard.
type DashboardStats struct {
	ActiveUsers        int64 `json:"active_users"`
	TotalCampaigns     int64 `json:"total_campaigns"`
	PublicCampaigns    int64 `json:"public_campaigns"`
	PrivateCampaigns   int64 `json:"private_campaigns"`
	AdRequests         int64 `json:"ad_requests"`
	FlaggedSponsors    int64 `json:"flagged_sponsors"`
	FlaggedInfluencers int64 `json:"flagged_influencers"`
	FlaggedCampaigns   int64 `json:"flagged_campaigns"`
	FlaggedAdRequests  int64 `json:"flagged_ad_requests"`
	PendingAdRequests  int64 `json:"pending_ad_requests"`
	AcceptedAdRequests int64 `json:"accepted_ad_requests"`
}

type DashboardResponse struct {
	Stats DashboardStats `json:"stats"`
}

type PendingSponsor struct {
	ID          uint    `json:"id"`
	CompanyName string  `json:"company_name"`
	Industry    string  `json:"industry"`
	Budget      float64 `json:"budget"`
}

type PendingSponsorsResponse struct {
	PendingSponsors []PendingSponsor `json:"pending_sponsors"`
}

type ApproveSponsorResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ToggleActiveResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
	Active  bool   `json:"active"`
}

type CampaignSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	Budget      float64 `json:"budget"`
	Visibility  string  `json:"visibility"`
	Goals       string  `json:"goals"`
	Flagged     bool    `json:"flagged"`
}

type AdRequestSummary struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Messages      string  `json:"messages"`
	Requirements  string  `json:"requirements"`
	PaymentAmount float64 `json:"payment_amount"`
	Status        string  `json:"status"`
	Flagged       bool    `json:"flagged"`
}

type SponsorSummary struct {
	ID          uint    `json:"id"`
	CompanyName string  `json:"company_name"`
	Industry    string  `json:"industry"`
	Budget      float64 `json:"budget"`
	Flagged     bool    `json:"flagged"`
}

type InfluencerSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Niche    string `json:"niche"`
	Reach    int64  `json:"reach"`
	Platform string `json:"platform"`
	Flagged  bool   `json:"flagged"`
}

type FlagCampaignResponse struct {
	Message    string `json:"message"`
	CampaignID uint   `json:"campaign_id"`
	Flagged    bool   `json:"flagged"`
}

type FlagSponsorResponse struct {
	Message   string `json:"message"`
	SponsorID uint   `json:"sponsor_id"`
	Flagged   bool   `json:"flagged"`
}

type FlagInfluencerResponse struct {
	Message      string `json:"message"`
	InfluencerID uint   `json:"influencer_id"`
	Flagged      bool   `json:"flagged"`
}

type FlagAdRequestResponse struct {
	Message     string `json:"message"`
	AdRequestID uint   `json:"ad_request_id"`
	Flagged     bool   `json:"flagged"`
}

// MessageResponse is the body of every error and of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
