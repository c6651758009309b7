package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"infinite-experiment/sponsorlink/internal/auth"
	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/logging"
	"infinite-experiment/sponsorlink/internal/middleware"
	"infinite-experiment/sponsorlink/internal/models/dtos"
	"infinite-experiment/sponsorlink/internal/services"

	"github.com/go-chi/chi/v5"
)

// AdminService is the moderation surface the admin handlers depend on.
type AdminService interface {
	DashboardStats(ctx context.Context) (*dtos.DashboardResponse, error)
	PendingSponsors(ctx context.Context) (*dtos.PendingSponsorsResponse, error)
	ApproveSponsor(ctx context.Context, id uint) (*dtos.ApproveSponsorResponse, error)
	Users(ctx context.Context) ([]dtos.UserSummary, error)
	ToggleUserActive(ctx context.Context, id uint, req dtos.ToggleActiveRequest) (*dtos.ToggleActiveResponse, error)
	Campaigns(ctx context.Context) ([]dtos.CampaignSummary, error)
	AdRequests(ctx context.Context) ([]dtos.AdRequestSummary, error)
	Sponsors(ctx context.Context) ([]dtos.SponsorSummary, error)
	Influencers(ctx context.Context) ([]dtos.InfluencerSummary, error)
	FlagCampaign(ctx context.Context, id uint) (*dtos.FlagCampaignResponse, error)
	FlagSponsor(ctx context.Context, id uint) (*dtos.FlagSponsorResponse, error)
	FlagInfluencer(ctx context.Context, id uint) (*dtos.FlagInfluencerResponse, error)
	FlagAdRequest(ctx context.Context, id uint) (*dtos.FlagAdRequestResponse, error)
}

var _ AdminService = (*services.AdminService)(nil)

// GET /api/v1/admin/dashboard
func (h *Handlers) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.admin.DashboardStats(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "")
			return
		}
		common.RespondJSON(w, http.StatusOK, resp)
	}
}

// GET /api/v1/admin/sponsors/pending
func (h *Handlers) PendingSponsors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.admin.PendingSponsors(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "")
			return
		}
		common.RespondJSON(w, http.StatusOK, resp)
	}
}

// POST /api/v1/admin/sponsors/{sponsor_id}/approve
func (h *Handlers) ApproveSponsor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "sponsor_id")
		if !ok {
			common.RespondMessage(w, http.StatusNotFound, constants.MsgSponsorNotFoundOrApproved)
			return
		}

		resp, err := h.admin.ApproveSponsor(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err, constants.MsgSponsorNotFoundOrApproved)
			return
		}
		common.RespondJSON(w, http.StatusOK, resp)
	}
}

// GET /api/v1/admin/users
func (h *Handlers) Users() http.HandlerFunc {
	return listHandler(h.admin.Users)
}

// POST /api/v1/admin/users/{user_id}/toggle-active
//
// Body: {"active": true|false}. A missing or non-boolean field is a 400.
func (h *Handlers) ToggleUserActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "user_id")
		if !ok {
			common.RespondMessage(w, http.StatusNotFound, constants.MsgUserNotFound)
			return
		}

		var req dtos.ToggleActiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logging.Debug("Rejected toggle-active payload", "error", err.Error())
			common.RespondMessage(w, http.StatusBadRequest, constants.MsgActiveFieldRequired)
			return
		}

		resp, err := h.admin.ToggleUserActive(r.Context(), id, req)
		if err != nil {
			respondServiceError(w, r, err, constants.MsgUserNotFound)
			return
		}
		common.RespondJSON(w, http.StatusOK, resp)
	}
}

// GET /api/v1/admin/campaigns
func (h *Handlers) Campaigns() http.HandlerFunc {
	return listHandler(h.admin.Campaigns)
}

// GET /api/v1/admin/ad-requests
func (h *Handlers) AdRequests() http.HandlerFunc {
	return listHandler(h.admin.AdRequests)
}

// GET /api/v1/admin/sponsors
func (h *Handlers) Sponsors() http.HandlerFunc {
	return listHandler(h.admin.Sponsors)
}

// GET /api/v1/admin/influencers
func (h *Handlers) Influencers() http.HandlerFunc {
	return listHandler(h.admin.Influencers)
}

// POST /api/v1/admin/campaigns/{campaign_id}/flag
func (h *Handlers) FlagCampaign() http.HandlerFunc {
	return flagHandler("campaign_id", constants.MsgCampaignNotFound, h.admin.FlagCampaign)
}

// POST /api/v1/admin/sponsors/{sponsor_id}/flag
func (h *Handlers) FlagSponsor() http.HandlerFunc {
	return flagHandler("sponsor_id", constants.MsgSponsorNotFound, h.admin.FlagSponsor)
}

// POST /api/v1/admin/influencers/{influencer_id}/flag
func (h *Handlers) FlagInfluencer() http.HandlerFunc {
	return flagHandler("influencer_id", constants.MsgInfluencerNotFound, h.admin.FlagInfluencer)
}

// POST /api/v1/admin/ad-requests/{ad_request_id}/flag
func (h *Handlers) FlagAdRequest() http.HandlerFunc {
	return flagHandler("ad_request_id", constants.MsgAdRequestNotFound, h.admin.FlagAdRequest)
}

func listHandler[T any](list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "")
			return
		}
		if items == nil {
			items = []T{}
		}
		common.RespondJSON(w, http.StatusOK, items)
	}
}

func flagHandler[T any](param, notFound string, toggle func(context.Context, uint) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, param)
		if !ok {
			common.RespondMessage(w, http.StatusNotFound, notFound)
			return
		}

		resp, err := toggle(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err, notFound)
			return
		}
		common.RespondJSON(w, http.StatusOK, resp)
	}
}

// pathID parses a positive numeric URL param. Anything else cannot name a row.
func pathID(r *http.Request, param string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrNotFound) && notFound != "":
		common.RespondMessage(w, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrInvalidPayload):
		common.RespondMessage(w, http.StatusBadRequest, constants.MsgActiveFieldRequired)
	default:
		var userID uint
		if claims := auth.GetUserClaims(r.Context()); claims != nil {
			userID = claims.UserID()
		}
		logging.WithRequest(middleware.GetRequestID(r.Context()), userID, r.URL.Path).
			Errorw("Admin request failed", "method", r.Method, "error", err.Error())
		common.RespondMessage(w, http.StatusInternalServerError, constants.MsgInternalError)
	}
}
