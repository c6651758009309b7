package gorm

import "time"

// APIKey is a machine credential bound to a user. Lookups go through sqlx;
// the model exists for migrations.
type APIKey struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Key       string    `gorm:"column:key;uniqueIndex;not null"`
	UserID    uint      `gorm:"column:user_id;index;not null"`
	Status    bool      `gorm:"column:status;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (APIKey) TableName() string {
	return "api_keys"
}

// Models lists every table owned by the marketplace schema, in migration order.
func Models() []interface{} {
	return []interface{}{
		&Role{},
		&User{},
		&APIKey{},
		&Sponsor{},
		&Influencer{},
		&Campaign{},
		&AdRequest{},
	}
}
