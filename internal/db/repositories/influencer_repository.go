package repositories

import (
	"context"
	"fmt"

	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"

	"gorm.io/gorm"
)

type InfluencerRepository struct {
	db *gorm.DB
}

func NewInfluencerRepository(db *gorm.DB) *InfluencerRepository {
	return &InfluencerRepository{db: db}
}

func (r *InfluencerRepository) List(ctx context.Context) ([]gormModels.Influencer, error) {
	var influencers []gormModels.Influencer

	if err := r.db.WithContext(ctx).Order("id").Find(&influencers).Error; err != nil {
		return nil, fmt.Errorf("failed to list influencers: %w", err)
	}
	return influencers, nil
}

func (r *InfluencerRepository) ToggleFlag(ctx context.Context, id uint) (*gormModels.Influencer, error) {
	influencer, err := toggleFlag[gormModels.Influencer](ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("toggle influencer %d: %w", id, err)
	}
	return influencer, nil
}
