package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role mirrors the names stored in the roles table
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSponsor    Role = "sponsor"
	RoleInfluencer Role = "influencer"
)

// String returns the stored role name
func (r Role) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
