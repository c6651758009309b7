package repositories

import (
	"context"
	"fmt"

	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) List(ctx context.Context) ([]gormModels.Campaign, error) {
	var campaigns []gormModels.Campaign

	if err := r.db.WithContext(ctx).Order("id").Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *CampaignRepository) ToggleFlag(ctx context.Context, id uint) (*gormModels.Campaign, error) {
	campaign, err := toggleFlag[gormModels.Campaign](ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("toggle campaign %d: %w", id, err)
	}
	return campaign, nil
}
