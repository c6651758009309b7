package repositories

import (
	"context"
	"fmt"

	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/models/dtos"
	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type countQuery struct {
	name  string
	dst   *int64
	model interface{}
	where string
	args  []interface{}
}

// DashboardStats runs the dashboard counters against the current store state.
func (r *StatsRepository) DashboardStats(ctx context.Context) (*dtos.DashboardStats, error) {
	var stats dtos.DashboardStats

	queries := []countQuery{
		{"active_users", &stats.ActiveUsers, &gormModels.User{}, "active = ?", []interface{}{true}},
		{"total_campaigns", &stats.TotalCampaigns, &gormModels.Campaign{}, "", nil},
		{"public_campaigns", &stats.PublicCampaigns, &gormModels.Campaign{}, "visibility = ?", []interface{}{string(constants.VisibilityPublic)}},
		{"private_campaigns", &stats.PrivateCampaigns, &gormModels.Campaign{}, "visibility = ?", []interface{}{string(constants.VisibilityPrivate)}},
		{"ad_requests", &stats.AdRequests, &gormModels.AdRequest{}, "", nil},
		{"flagged_sponsors", &stats.FlaggedSponsors, &gormModels.Sponsor{}, "flagged = ?", []interface{}{true}},
		{"flagged_influencers", &stats.FlaggedInfluencers, &gormModels.Influencer{}, "flagged = ?", []interface{}{true}},
		{"flagged_campaigns", &stats.FlaggedCampaigns, &gormModels.Campaign{}, "flagged = ?", []interface{}{true}},
		{"flagged_ad_requests", &stats.FlaggedAdRequests, &gormModels.AdRequest{}, "flagged = ?", []interface{}{true}},
		{"pending_ad_requests", &stats.PendingAdRequests, &gormModels.AdRequest{}, "status IN ?", []interface{}{constants.PendingStatusValues()}},
		{"accepted_ad_requests", &stats.AcceptedAdRequests, &gormModels.AdRequest{}, "status = ?", []interface{}{string(constants.StatusAccepted)}},
	}

	db := r.db.WithContext(ctx)
	for _, q := range queries {
		tx := db.Model(q.model)
		if q.where != "" {
			tx = tx.Where(q.where, q.args...)
		}
		if err := tx.Count(q.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", q.name, err)
		}
	}

	return &stats, nil
}
