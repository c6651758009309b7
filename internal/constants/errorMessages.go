package constants

const (
	MsgSponsorNotFoundOrApproved = "Sponsor not found or already approved"
	MsgSponsorApproved           = "Sponsor has been approved"
	MsgActiveFieldRequired       = "Invalid request. 'active' field is required."
	MsgUserNotFound              = "User not found."
	MsgCampaignNotFound          = "Campaign not found"
	MsgSponsorNotFound           = "Sponsor not found"
	MsgInfluencerNotFound        = "Influencer not found"
	MsgAdRequestNotFound         = "Ad request not found"
	MsgInternalError             = "Internal server error"
)

const (
	MsgMissingCredentials = "Authentication is required to access this resource"
	MsgInvalidCredentials = "Invalid or expired credentials"
	MsgForbidden          = "You do not have the required role to access this resource"
	MsgTooManyRequests    = "Too many requests"
)
