package api

import (
	"infinite-experiment/sponsorlink/internal/auth"
	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/db/repositories"
	"infinite-experiment/sponsorlink/internal/metrics"
	"infinite-experiment/sponsorlink/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	UserGorm    *repositories.UserRepositoryGORM
	Keys        *repositories.KeysRepo
	Stats       *repositories.StatsRepository
	Sponsors    *repositories.SponsorRepository
	Influencers *repositories.InfluencerRepository
	Campaigns   *repositories.CampaignRepository
	AdRequests  *repositories.AdRequestRepository
}

type Services struct {
	Cache common.CacheInterface
	Admin *services.AdminService
	Auth  *auth.Authenticator
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	SQLX     *sqlx.DB
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services over the shared pools.
// The cache backend is chosen by the caller and injected here.
func InitDependencies(orm *gorm.DB, sqlxDB *sqlx.DB, cache common.CacheInterface, jwtSecret []byte, metricsReg *metrics.MetricsRegistry) *Dependencies {

	repos := &Repositories{
		UserGorm:    repositories.NewUserRepositoryGORM(orm),
		Keys:        repositories.NewApiKeysRepo(sqlxDB),
		Stats:       repositories.NewStatsRepository(orm),
		Sponsors:    repositories.NewSponsorRepository(orm),
		Influencers: repositories.NewInfluencerRepository(orm),
		Campaigns:   repositories.NewCampaignRepository(orm),
		AdRequests:  repositories.NewAdRequestRepository(orm),
	}

	adminSvc := services.NewAdminService(services.AdminRepositories{
		Stats:       repos.Stats,
		Users:       repos.UserGorm,
		Sponsors:    repos.Sponsors,
		Influencers: repos.Influencers,
		Campaigns:   repos.Campaigns,
		AdRequests:  repos.AdRequests,
	}, cache, metricsReg)

	svcs := &Services{
		Cache: cache,
		Admin: adminSvc,
		Auth:  auth.NewAuthenticator(jwtSecret, repos.UserGorm, repos.Keys),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		SQLX:     sqlxDB,
		Metrics:  metricsReg,
	}
}
