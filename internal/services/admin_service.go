package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/db/repositories"
	"infinite-experiment/sponsorlink/internal/logging"
	"infinite-experiment/sponsorlink/internal/metrics"
	"infinite-experiment/sponsorlink/internal/models/dtos"
	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"
)

var (
	// ErrNotFound is the repository sentinel, re-exported for handlers.
	ErrNotFound = repositories.ErrNotFound

	ErrInvalidPayload = errors.New("invalid payload")
)

const cacheClearTimeout = 2 * time.Second

// AdminService implements the admin dashboard, list views and moderation
// actions. Every successful mutation clears the whole response cache after
// its transaction has committed.
type AdminService struct {
	repos   AdminRepositories
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewAdminService(repos AdminRepositories, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *AdminService {
	return &AdminService{
		repos:   repos,
		cache:   cache,
		metrics: metricsReg,
	}
}

func (s *AdminService) DashboardStats(ctx context.Context) (*dtos.DashboardResponse, error) {
	stats, err := s.repos.Stats.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dtos.DashboardResponse{Stats: *stats}, nil
}

func (s *AdminService) PendingSponsors(ctx context.Context) (*dtos.PendingSponsorsResponse, error) {
	sponsors, err := s.repos.Sponsors.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.PendingSponsor, 0, len(sponsors))
	for _, sp := range sponsors {
		out = append(out, dtos.PendingSponsor{
			ID:          sp.ID,
			CompanyName: sp.CompanyName,
			Industry:    sp.Industry,
			Budget:      sp.Budget,
		})
	}
	return &dtos.PendingSponsorsResponse{PendingSponsors: out}, nil
}

// ApproveSponsor returns ErrNotFound for a missing or already approved sponsor.
func (s *AdminService) ApproveSponsor(ctx context.Context, id uint) (*dtos.ApproveSponsorResponse, error) {
	sponsor, err := s.repos.Sponsors.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	s.committed(ctx, "sponsor", "approve")

	return &dtos.ApproveSponsorResponse{
		Message:  constants.MsgSponsorApproved,
		Username: sponsor.CompanyName,
	}, nil
}

func (s *AdminService) Users(ctx context.Context) ([]dtos.UserSummary, error) {
	users, err := s.repos.Users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, dtos.UserSummary{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return out, nil
}

// ToggleUserActive validates the payload before touching the store, so a
// missing field is reported even for an unknown user.
func (s *AdminService) ToggleUserActive(ctx context.Context, id uint, req dtos.ToggleActiveRequest) (*dtos.ToggleActiveResponse, error) {
	if req.Active == nil {
		return nil, fmt.Errorf("%w: active is required", ErrInvalidPayload)
	}

	user, err := s.repos.Users.SetActive(ctx, id, *req.Active)
	if err != nil {
		return nil, err
	}

	action := "deactivate"
	statusText := "deactivated"
	if user.Active {
		action = "activate"
		statusText = "activated"
	}
	s.committed(ctx, "user", action)

	return &dtos.ToggleActiveResponse{
		Message: fmt.Sprintf("User has been %s successfully.", statusText),
		UserID:  user.ID,
		Active:  user.Active,
	}, nil
}

func (s *AdminService) Campaigns(ctx context.Context) ([]dtos.CampaignSummary, error) {
	campaigns, err := s.repos.Campaigns.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.CampaignSummary, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, campaignSummary(c))
	}
	return out, nil
}

func (s *AdminService) AdRequests(ctx context.Context) ([]dtos.AdRequestSummary, error) {
	adRequests, err := s.repos.AdRequests.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.AdRequestSummary, 0, len(adRequests))
	for _, a := range adRequests {
		out = append(out, dtos.AdRequestSummary{
			ID:            a.ID,
			Name:          a.Name,
			Messages:      a.Messages,
			Requirements:  a.Requirements,
			PaymentAmount: a.PaymentAmount,
			Status:        string(a.Status),
			Flagged:       a.Flagged,
		})
	}
	return out, nil
}

func (s *AdminService) Sponsors(ctx context.Context) ([]dtos.SponsorSummary, error) {
	sponsors, err := s.repos.Sponsors.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.SponsorSummary, 0, len(sponsors))
	for _, sp := range sponsors {
		out = append(out, dtos.SponsorSummary{
			ID:          sp.ID,
			CompanyName: sp.CompanyName,
			Industry:    sp.Industry,
			Budget:      sp.Budget,
			Flagged:     sp.Flagged,
		})
	}
	return out, nil
}

func (s *AdminService) Influencers(ctx context.Context) ([]dtos.InfluencerSummary, error) {
	influencers, err := s.repos.Influencers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.InfluencerSummary, 0, len(influencers))
	for _, i := range influencers {
		out = append(out, dtos.InfluencerSummary{
			ID:       i.ID,
			Name:     i.Name,
			Category: i.Category,
			Niche:    i.Niche,
			Reach:    i.Reach,
			Platform: i.Platform,
			Flagged:  i.Flagged,
		})
	}
	return out, nil
}

func (s *AdminService) FlagCampaign(ctx context.Context, id uint) (*dtos.FlagCampaignResponse, error) {
	campaign, err := s.repos.Campaigns.ToggleFlag(ctx, id)
	if err != nil {
		return nil, err
	}
	s.committed(ctx, "campaign", flagAction(campaign.Flagged))

	return &dtos.FlagCampaignResponse{
		Message:    flagMessage("Campaign", campaign.Flagged),
		CampaignID: campaign.ID,
		Flagged:    campaign.Flagged,
	}, nil
}

func (s *AdminService) FlagSponsor(ctx context.Context, id uint) (*dtos.FlagSponsorResponse, error) {
	sponsor, err := s.repos.Sponsors.ToggleFlag(ctx, id)
	if err != nil {
		return nil, err
	}
	s.committed(ctx, "sponsor", flagAction(sponsor.Flagged))

	return &dtos.FlagSponsorResponse{
		Message:   flagMessage("Sponsor", sponsor.Flagged),
		SponsorID: sponsor.ID,
		Flagged:   sponsor.Flagged,
	}, nil
}

func (s *AdminService) FlagInfluencer(ctx context.Context, id uint) (*dtos.FlagInfluencerResponse, error) {
	influencer, err := s.repos.Influencers.ToggleFlag(ctx, id)
	if err != nil {
		return nil, err
	}
	s.committed(ctx, "influencer", flagAction(influencer.Flagged))

	return &dtos.FlagInfluencerResponse{
		Message:      flagMessage("Influencer", influencer.Flagged),
		InfluencerID: influencer.ID,
		Flagged:      influencer.Flagged,
	}, nil
}

func (s *AdminService) FlagAdRequest(ctx context.Context, id uint) (*dtos.FlagAdRequestResponse, error) {
	adRequest, err := s.repos.AdRequests.ToggleFlag(ctx, id)
	if err != nil {
		return nil, err
	}
	s.committed(ctx, "ad_request", flagAction(adRequest.Flagged))

	return &dtos.FlagAdRequestResponse{
		Message:     flagMessage("Ad request", adRequest.Flagged),
		AdRequestID: adRequest.ID,
		Flagged:     adRequest.Flagged,
	}, nil
}

// committed records a successful mutation and clears the response cache.
// Must only be called after the repository transaction returned nil.
func (s *AdminService) committed(ctx context.Context, entity, action string) {
	s.metrics.ModerationActionsTotal.WithLabelValues(entity, action).Inc()

	// the mutation is durable; a client hang-up must not skip the clear
	clearCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheClearTimeout)
	defer cancel()

	if err := s.cache.Clear(clearCtx); err != nil {
		s.metrics.CacheClearsTotal.WithLabelValues("error").Inc()
		logging.Warn("Response cache clear failed after commit",
			"entity", entity,
			"action", action,
			"error", err.Error(),
		)
		return
	}
	s.metrics.CacheClearsTotal.WithLabelValues("ok").Inc()
	logging.Debug("Response cache cleared", "entity", entity, "action", action)
}

func campaignSummary(c gormModels.Campaign) dtos.CampaignSummary {
	return dtos.CampaignSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   dtos.Date(c.StartDate),
		EndDate:     dtos.Date(c.EndDate),
		Budget:      c.Budget,
		Visibility:  string(c.Visibility),
		Goals:       c.Goals,
		Flagged:     c.Flagged,
	}
}

func flagAction(flagged bool) string {
	if flagged {
		return "flag"
	}
	return "unflag"
}

func flagMessage(entity string, flagged bool) string {
	status := "unflagged"
	if flagged {
		status = "flagged"
	}
	return fmt.Sprintf("%s has been %s.", entity, status)
}
