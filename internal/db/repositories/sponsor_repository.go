package repositories

import (
	"context"
	"fmt"

	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"

	"gorm.io/gorm"
)

type SponsorRepository struct {
	db *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

func (r *SponsorRepository) List(ctx context.Context) ([]gormModels.Sponsor, error) {
	var sponsors []gormModels.Sponsor

	if err := r.db.WithContext(ctx).Order("id").Find(&sponsors).Error; err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	return sponsors, nil
}

// ListPending returns sponsors still waiting for approval
func (r *SponsorRepository) ListPending(ctx context.Context) ([]gormModels.Sponsor, error) {
	var sponsors []gormModels.Sponsor

	err := r.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("id").
		Find(&sponsors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending sponsors: %w", err)
	}
	return sponsors, nil
}

// Approve moves an unapproved sponsor to approved. A sponsor that is missing
// or already approved yields ErrNotFound.
func (r *SponsorRepository) Approve(ctx context.Context, id uint) (*gormModels.Sponsor, error) {
	var sponsor gormModels.Sponsor

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&gormModels.Sponsor{}).
			Where("id = ? AND is_approved = ?", id, false).
			Update("is_approved", true)
		if res.Error != nil {
			return fmt.Errorf("failed to approve: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return notFoundOr(tx.First(&sponsor, id).Error)
	})
	if err != nil {
		return nil, fmt.Errorf("approve sponsor %d: %w", id, err)
	}

	return &sponsor, nil
}

func (r *SponsorRepository) ToggleFlag(ctx context.Context, id uint) (*gormModels.Sponsor, error) {
	sponsor, err := toggleFlag[gormModels.Sponsor](ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("toggle sponsor %d: %w", id, err)
	}
	return sponsor, nil
}
