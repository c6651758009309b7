package gorm

type Sponsor struct {
	ID          uint    `gorm:"column:id;primaryKey"`
	UserID      uint    `gorm:"column:user_id;index"`
	CompanyName string  `gorm:"column:company_name;not null"`
	Industry    string  `gorm:"column:industry"`
	Budget      float64 `gorm:"column:budget"`
	IsApproved  bool    `gorm:"column:is_approved;not null;default:false"`
	Flagged     bool    `gorm:"column:flagged;not null;default:false"`
}

// TableName specifies the table name for GORM
func (Sponsor) TableName() string {
	return "sponsors"
}
