package gorm

type Influencer struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	UserID   uint   `gorm:"column:user_id;index"`
	Name     string `gorm:"column:name;not null"`
	Category string `gorm:"column:category"`
	Niche    string `gorm:"column:niche"`
	Reach    int64  `gorm:"column:reach"`
	Platform string `gorm:"column:platform"`
	Flagged  bool   `gorm:"column:flagged;not null;default:false"`
}

// TableName specifies the table name for GORM
func (Influencer) TableName() string {
	return "influencers"
}
