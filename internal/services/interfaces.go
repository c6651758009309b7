package services

import (
	"context"

	"infinite-experiment/sponsorlink/internal/models/dtos"
	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"
)

type StatsStore interface {
	DashboardStats(ctx context.Context) (*dtos.DashboardStats, error)
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]gormModels.User, error)
	SetActive(ctx context.Context, id uint, active bool) (*gormModels.User, error)
}

type SponsorStore interface {
	List(ctx context.Context) ([]gormModels.Sponsor, error)
	ListPending(ctx context.Context) ([]gormModels.Sponsor, error)
	Approve(ctx context.Context, id uint) (*gormModels.Sponsor, error)
	ToggleFlag(ctx context.Context, id uint) (*gormModels.Sponsor, error)
}

type InfluencerStore interface {
	List(ctx context.Context) ([]gormModels.Influencer, error)
	ToggleFlag(ctx context.Context, id uint) (*gormModels.Influencer, error)
}

type CampaignStore interface {
	List(ctx context.Context) ([]gormModels.Campaign, error)
	ToggleFlag(ctx context.Context, id uint) (*gormModels.Campaign, error)
}

type AdRequestStore interface {
	List(ctx context.Context) ([]gormModels.AdRequest, error)
	ToggleFlag(ctx context.Context, id uint) (*gormModels.AdRequest, error)
}

// AdminRepositories groups the stores the admin service reads and mutates.
type AdminRepositories struct {
	Stats       StatsStore
	Users       UserStore
	Sponsors    SponsorStore
	Influencers InfluencerStore
	Campaigns   CampaignStore
	AdRequests  AdRequestStore
}
