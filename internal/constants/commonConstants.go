package constants

type (
	RequestSource   string
	Visibility      string
	AdRequestStatus string
)

const (
	RequestSourceJWT    RequestSource = "JWT"
	RequestSourceAPIKey RequestSource = "API_KEY"

	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

const (
	StatusNegotiationFromSponsor    AdRequestStatus = "Negotiations Underway from Sponsor"
	StatusNegotiationFromInfluencer AdRequestStatus = "Negotiations Underway from Influencer"
	StatusInfluencerRequested       AdRequestStatus = "Influencer Requested for Ad"
	StatusAccepted                  AdRequestStatus = "Accepted"
	StatusRejected                  AdRequestStatus = "Rejected"
	StatusCompleted                 AdRequestStatus = "Completed"
)

// PendingAdRequestStatuses are the negotiation states counted as pending on the dashboard.
var PendingAdRequestStatuses = []AdRequestStatus{
	StatusNegotiationFromSponsor,
	StatusNegotiationFromInfluencer,
	StatusInfluencerRequested,
}

// PendingStatusValues returns the pending set as plain strings for query args.
func PendingStatusValues() []string {
	out := make([]string, len(PendingAdRequestStatuses))
	for i, s := range PendingAdRequestStatuses {
		out[i] = string(s)
	}
	return out
}

const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
	HeaderCache     = "X-Cache"
)
