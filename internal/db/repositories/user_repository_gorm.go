package repositories

import (
	"context"
	"fmt"

	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"

	"gorm.io/gorm"
)

type UserRepositoryGORM struct {
	db *gorm.DB
}

// NewUserRepositoryGORM creates a new GORM-based user repository
func NewUserRepositoryGORM(db *gorm.DB) *UserRepositoryGORM {
	return &UserRepositoryGORM{db: db}
}

// GetUserWithRoles retrieves a user by ID with roles preloaded
func (r *UserRepositoryGORM) GetUserWithRoles(ctx context.Context, id uint) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&user, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, notFoundOr(err))
	}

	return &user, nil
}

// ListUsers returns every user ordered by ID
func (r *UserRepositoryGORM) ListUsers(ctx context.Context) ([]gormModels.User, error) {
	var users []gormModels.User

	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetActive stores the active flag of a user and returns the committed row
func (r *UserRepositoryGORM) SetActive(ctx context.Context, id uint, active bool) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Model(&user).Update("active", active).Error; err != nil {
			return fmt.Errorf("failed to update active: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set user %d active=%t: %w", id, active, err)
	}

	return &user, nil
}
