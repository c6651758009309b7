package gorm

import (
	"time"

	"infinite-experiment/sponsorlink/internal/constants"
)

type User struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Username  string    `gorm:"column:username;uniqueIndex;not null"`
	Email     string    `gorm:"column:email;uniqueIndex;not null"`
	Active    bool      `gorm:"column:active;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Roles []Role `gorm:"many2many:roles_users;"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// RoleNames flattens the preloaded roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name.String())
	}
	return names
}

type Role struct {
	ID          uint           `gorm:"column:id;primaryKey"`
	Name        constants.Role `gorm:"column:name;uniqueIndex;not null"`
	Description string         `gorm:"column:description"`
}

// TableName specifies the table name for GORM
func (Role) TableName() string {
	return "roles"
}
