package gorm

import (
	"time"

	"infinite-experiment/sponsorlink/internal/constants"
)

type Campaign struct {
	ID          uint                 `gorm:"column:id;primaryKey"`
	SponsorID   uint                 `gorm:"column:sponsor_id;index"`
	Name        string               `gorm:"column:name;not null"`
	Description string               `gorm:"column:description"`
	StartDate   time.Time            `gorm:"column:start_date;type:date"`
	EndDate     time.Time            `gorm:"column:end_date;type:date"`
	Budget      float64              `gorm:"column:budget"`
	Visibility  constants.Visibility `gorm:"column:visibility;not null;default:public"`
	Goals       string               `gorm:"column:goals"`
	Flagged     bool                 `gorm:"column:flagged;not null;default:false"`
}

// TableName specifies the table name for GORM
func (Campaign) TableName() string {
	return "campaigns"
}
