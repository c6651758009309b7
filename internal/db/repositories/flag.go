package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// toggleFlag flips the flagged column of row id in a single statement and
// returns the row as committed.
func toggleFlag[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var row T

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(new(T)).
			Where("id = ?", id).
			Update("flagged", gorm.Expr("NOT flagged"))
		if res.Error != nil {
			return fmt.Errorf("failed to toggle flagged: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.First(&row, id).Error; err != nil {
			return fmt.Errorf("failed to reload flagged row: %w", notFoundOr(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}
