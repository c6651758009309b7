package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/db/repositories"
	"infinite-experiment/sponsorlink/internal/metrics"
	"infinite-experiment/sponsorlink/internal/models/dtos"
	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// Auto migrate
	if err := db.AutoMigrate(gormModels.Models()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func gormRepos(db *gorm.DB) AdminRepositories {
	return AdminRepositories{
		Stats:       repositories.NewStatsRepository(db),
		Users:       repositories.NewUserRepositoryGORM(db),
		Sponsors:    repositories.NewSponsorRepository(db),
		Influencers: repositories.NewInfluencerRepository(db),
		Campaigns:   repositories.NewCampaignRepository(db),
		AdRequests:  repositories.NewAdRequestRepository(db),
	}
}

// recordingCache wraps a real cache and counts Clear calls
type recordingCache struct {
	common.CacheInterface
	clears   int
	clearErr error
}

func (c *recordingCache) Clear(ctx context.Context) error {
	c.clears++
	if c.clearErr != nil {
		return c.clearErr
	}
	return c.CacheInterface.Clear(ctx)
}

func newTestService(t *testing.T, repos AdminRepositories) (*AdminService, *recordingCache) {
	cache := &recordingCache{CacheInterface: common.NewCacheService(time.Minute, time.Minute)}
	return NewAdminService(repos, cache, metrics.NewMetricsRegistry(prometheus.NewRegistry())), cache
}

func TestAdminService_ToggleUserActive(t *testing.T) {
	db := setupTestDB(t)
	svc, cache := newTestService(t, gormRepos(db))
	ctx := context.Background()

	db.Create(&gormModels.User{ID: 7, Username: "dana", Email: "dana@example.com", Active: false})

	active := true
	resp, err := svc.ToggleUserActive(ctx, 7, dtos.ToggleActiveRequest{Active: &active})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := dtos.ToggleActiveResponse{Message: "User has been activated successfully.", UserID: 7, Active: true}
	if *resp != want {
		t.Errorf("Expected %+v, got %+v", want, *resp)
	}

	var stored gormModels.User
	db.First(&stored, 7)
	if !stored.Active {
		t.Error("Expected store to reflect active=true")
	}
	if cache.clears != 1 {
		t.Errorf("Expected one cache clear, got %d", cache.clears)
	}

	inactive := false
	resp, _ = svc.ToggleUserActive(ctx, 7, dtos.ToggleActiveRequest{Active: &inactive})
	if resp.Message != "User has been deactivated successfully." || resp.Active {
		t.Errorf("Unexpected deactivate response %+v", resp)
	}
}

func TestAdminService_ToggleUserActive_Invalid(t *testing.T) {
	db := setupTestDB(t)
	svc, cache := newTestService(t, gormRepos(db))
	ctx := context.Background()

	db.Create(&gormModels.User{ID: 7, Username: "dana", Email: "dana@example.com"})

	_, err := svc.ToggleUserActive(ctx, 7, dtos.ToggleActiveRequest{})
	if !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("Expected ErrInvalidPayload, got %v", err)
	}

	active := true
	_, err = svc.ToggleUserActive(ctx, 99, dtos.ToggleActiveRequest{Active: &active})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	var stored gormModels.User
	db.First(&stored, 7)
	if stored.Active {
		t.Error("Invalid payload must not mutate the user")
	}
	if cache.clears != 0 {
		t.Errorf("Expected no cache clear on failure, got %d", cache.clears)
	}
}

func TestAdminService_ApproveSponsor(t *testing.T) {
	db := setupTestDB(t)
	svc, cache := newTestService(t, gormRepos(db))
	ctx := context.Background()

	db.Create(&gormModels.Sponsor{ID: 1, CompanyName: "Acme", Industry: "Retail", Budget: 100})

	resp, err := svc.ApproveSponsor(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Message != "Sponsor has been approved" || resp.Username != "Acme" {
		t.Errorf("Unexpected response %+v", resp)
	}

	pending, _ := svc.PendingSponsors(ctx)
	if len(pending.PendingSponsors) != 0 {
		t.Errorf("Expected no pending sponsors, got %+v", pending.PendingSponsors)
	}

	if _, err := svc.ApproveSponsor(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for already approved sponsor, got %v", err)
	}
	if cache.clears != 1 {
		t.Errorf("Expected exactly one cache clear, got %d", cache.clears)
	}
}

func TestAdminService_FlagTogglesAreSelfInverse(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestService(t, gormRepos(db))
	ctx := context.Background()

	db.Create(&gormModels.Campaign{ID: 3, Name: "Spring"})
	db.Create(&gormModels.Sponsor{ID: 3, CompanyName: "Acme"})
	db.Create(&gormModels.Influencer{ID: 3, Name: "Jo"})
	db.Create(&gormModels.AdRequest{ID: 3, Name: "Post"})

	c, err := svc.FlagCampaign(ctx, 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := dtos.FlagCampaignResponse{Message: "Campaign has been flagged.", CampaignID: 3, Flagged: true}
	if *c != want {
		t.Errorf("Expected %+v, got %+v", want, *c)
	}
	c, _ = svc.FlagCampaign(ctx, 3)
	if c.Flagged || c.Message != "Campaign has been unflagged." {
		t.Errorf("Expected campaign unflagged, got %+v", c)
	}

	s1, _ := svc.FlagSponsor(ctx, 3)
	s2, _ := svc.FlagSponsor(ctx, 3)
	if !s1.Flagged || s2.Flagged {
		t.Errorf("Sponsor toggle not self-inverse: %v then %v", s1.Flagged, s2.Flagged)
	}

	i1, _ := svc.FlagInfluencer(ctx, 3)
	i2, _ := svc.FlagInfluencer(ctx, 3)
	if !i1.Flagged || i2.Flagged {
		t.Errorf("Influencer toggle not self-inverse: %v then %v", i1.Flagged, i2.Flagged)
	}

	a1, _ := svc.FlagAdRequest(ctx, 3)
	if a1.Message != "Ad request has been flagged." {
		t.Errorf("Unexpected ad request message %q", a1.Message)
	}
	a2, _ := svc.FlagAdRequest(ctx, 3)
	if !a1.Flagged || a2.Flagged {
		t.Errorf("Ad request toggle not self-inverse: %v then %v", a1.Flagged, a2.Flagged)
	}
}

func TestAdminService_FlagMissingReturnsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc, cache := newTestService(t, gormRepos(db))
	ctx := context.Background()

	if _, err := svc.FlagCampaign(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for campaign, got %v", err)
	}
	if _, err := svc.FlagSponsor(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for sponsor, got %v", err)
	}
	if _, err := svc.FlagInfluencer(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for influencer, got %v", err)
	}
	if _, err := svc.FlagAdRequest(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for ad request, got %v", err)
	}
	if cache.clears != 0 {
		t.Errorf("Expected no cache clears, got %d", cache.clears)
	}
}

// failingSponsorStore simulates a commit failure
type failingSponsorStore struct {
	SponsorStore
	err error
}

func (f *failingSponsorStore) ToggleFlag(ctx context.Context, id uint) (*gormModels.Sponsor, error) {
	return nil, f.err
}

func TestAdminService_CommitFailureKeepsCache(t *testing.T) {
	db := setupTestDB(t)
	repos := gormRepos(db)
	boom := errors.New("commit failed")
	repos.Sponsors = &failingSponsorStore{SponsorStore: repos.Sponsors, err: boom}
	svc, cache := newTestService(t, repos)
	ctx := context.Background()

	_, _ = cache.Set(ctx, "GET /api/v1/admin/sponsors", []byte("[]"), time.Minute, 0)

	if _, err := svc.FlagSponsor(ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("Expected commit error, got %v", err)
	}
	if cache.clears != 0 {
		t.Errorf("Cache must not be cleared when the commit fails")
	}
	if _, found, _ := cache.Get(ctx, "GET /api/v1/admin/sponsors"); !found {
		t.Error("Expected cached entry to survive a failed commit")
	}
}

func TestAdminService_CacheClearFailureDoesNotFailMutation(t *testing.T) {
	db := setupTestDB(t)
	svc, cache := newTestService(t, gormRepos(db))
	cache.clearErr = errors.New("redis down")
	ctx := context.Background()

	db.Create(&gormModels.Campaign{ID: 1, Name: "Spring"})

	resp, err := svc.FlagCampaign(ctx, 1)
	if err != nil {
		t.Fatalf("Expected mutation to succeed despite clear failure, got %v", err)
	}
	if !resp.Flagged {
		t.Error("Expected campaign flagged")
	}
	if cache.clears != 1 {
		t.Errorf("Expected clear to be attempted once, got %d", cache.clears)
	}
}

func TestAdminService_DashboardStats(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestService(t, gormRepos(db))
	ctx := context.Background()

	db.Create(&gormModels.AdRequest{Name: "a", Status: constants.StatusInfluencerRequested})
	db.Create(&gormModels.AdRequest{Name: "b", Status: constants.StatusAccepted})
	db.Create(&gormModels.AdRequest{Name: "c", Status: constants.StatusCompleted})

	resp, err := svc.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Stats.AdRequests != 3 || resp.Stats.PendingAdRequests != 1 || resp.Stats.AcceptedAdRequests != 1 {
		t.Errorf("Unexpected stats %+v", resp.Stats)
	}
}

func TestAdminService_ListsMapFields(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestService(t, gormRepos(db))
	ctx := context.Background()

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	db.Create(&gormModels.Campaign{ID: 1, Name: "Spring", Description: "d", StartDate: start, EndDate: start.AddDate(0, 1, 0), Budget: 10, Visibility: constants.VisibilityPrivate, Goals: "g"})
	db.Create(&gormModels.Influencer{ID: 2, Name: "Jo", Category: "tech", Niche: "phones", Reach: 12000, Platform: "youtube"})
	db.Create(&gormModels.User{ID: 3, Username: "sam", Email: "sam@example.com"})

	campaigns, err := svc.Campaigns(ctx)
	if err != nil || len(campaigns) != 1 {
		t.Fatalf("Expected one campaign, got %v err=%v", campaigns, err)
	}
	if campaigns[0].Visibility != "private" || time.Time(campaigns[0].StartDate).Day() != 1 {
		t.Errorf("Unexpected campaign summary %+v", campaigns[0])
	}

	influencers, _ := svc.Influencers(ctx)
	if len(influencers) != 1 || influencers[0].Reach != 12000 || influencers[0].Platform != "youtube" {
		t.Errorf("Unexpected influencers %+v", influencers)
	}

	users, _ := svc.Users(ctx)
	if len(users) != 1 || users[0].Email != "sam@example.com" {
		t.Errorf("Unexpected users %+v", users)
	}

	adRequests, _ := svc.AdRequests(ctx)
	if adRequests == nil || len(adRequests) != 0 {
		t.Errorf("Expected empty non-nil ad request list, got %#v", adRequests)
	}
}
