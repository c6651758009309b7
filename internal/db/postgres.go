package db

import (
	"fmt"

	"infinite-experiment/sponsorlink/internal/config"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// NewSQLX wraps the pool already opened by GORM so raw queries and the ORM
// share connections.
func NewSQLX(orm *gorm.DB, driver string) (*sqlx.DB, error) {
	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	return sqlx.NewDb(sqlDB, sqlxDriverName(driver)), nil
}

// sqlxDriverName maps the configured driver to the name sqlx uses for bindvars.
func sqlxDriverName(driver string) string {
	if driver == config.DriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}
