package gorm

import "infinite-experiment/sponsorlink/internal/constants"

type AdRequest struct {
	ID            uint                      `gorm:"column:id;primaryKey"`
	CampaignID    uint                      `gorm:"column:campaign_id;index"`
	InfluencerID  *uint                     `gorm:"column:influencer_id;index"`
	Name          string                    `gorm:"column:name"`
	Messages      string                    `gorm:"column:messages"`
	Requirements  string                    `gorm:"column:requirements"`
	PaymentAmount float64                   `gorm:"column:payment_amount"`
	Status        constants.AdRequestStatus `gorm:"column:status;index"`
	Flagged       bool                      `gorm:"column:flagged;not null;default:false"`
}

// TableName specifies the table name for GORM
func (AdRequest) TableName() string {
	return "ad_requests"
}
