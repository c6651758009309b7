package repositories

import (
	"context"
	"fmt"

	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"

	"gorm.io/gorm"
)

type AdRequestRepository struct {
	db *gorm.DB
}

func NewAdRequestRepository(db *gorm.DB) *AdRequestRepository {
	return &AdRequestRepository{db: db}
}

func (r *AdRequestRepository) List(ctx context.Context) ([]gormModels.AdRequest, error) {
	var adRequests []gormModels.AdRequest

	if err := r.db.WithContext(ctx).Order("id").Find(&adRequests).Error; err != nil {
		return nil, fmt.Errorf("failed to list ad requests: %w", err)
	}
	return adRequests, nil
}

func (r *AdRequestRepository) ToggleFlag(ctx context.Context, id uint) (*gormModels.AdRequest, error) {
	adRequest, err := toggleFlag[gormModels.AdRequest](ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("toggle ad request %d: %w", id, err)
	}
	return adRequest, nil
}
