package routes

import (
	"net/http"
	"time"

	"infinite-experiment/sponsorlink/internal/api"
	"infinite-experiment/sponsorlink/internal/auth"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// adminRoute declares one admin endpoint. Access rules and cacheability are
// data here and applied by the same chain for every route.
type adminRoute struct {
	method    string
	pattern   string
	mode      auth.RoleMode
	roles     []constants.Role
	cacheable bool
	handler   func(h *api.Handlers) http.HandlerFunc
}

var adminOnly = []constants.Role{constants.RoleAdmin}

func adminRoutes() []adminRoute {
	return []adminRoute{
		{http.MethodGet, "/dashboard", auth.RolesAccepted, adminOnly, true, (*api.Handlers).Dashboard},
		{http.MethodGet, "/sponsors/pending", auth.RolesRequired, adminOnly, false, (*api.Handlers).PendingSponsors},
		{http.MethodPost, "/sponsors/{sponsor_id}/approve", auth.RolesRequired, adminOnly, false, (*api.Handlers).ApproveSponsor},
		{http.MethodGet, "/users", auth.RolesAccepted, adminOnly, true, (*api.Handlers).Users},
		{http.MethodPost, "/users/{user_id}/toggle-active", auth.RolesRequired, adminOnly, false, (*api.Handlers).ToggleUserActive},
		{http.MethodGet, "/campaigns", auth.RolesAccepted, adminOnly, true, (*api.Handlers).Campaigns},
		{http.MethodGet, "/ad-requests", auth.RolesAccepted, adminOnly, true, (*api.Handlers).AdRequests},
		{http.MethodGet, "/sponsors", auth.RolesAccepted, adminOnly, true, (*api.Handlers).Sponsors},
		{http.MethodGet, "/influencers", auth.RolesAccepted, adminOnly, true, (*api.Handlers).Influencers},
		{http.MethodPost, "/campaigns/{campaign_id}/flag", auth.RolesRequired, adminOnly, false, (*api.Handlers).FlagCampaign},
		{http.MethodPost, "/sponsors/{sponsor_id}/flag", auth.RolesRequired, adminOnly, false, (*api.Handlers).FlagSponsor},
		{http.MethodPost, "/influencers/{influencer_id}/flag", auth.RolesRequired, adminOnly, false, (*api.Handlers).FlagInfluencer},
		{http.MethodPost, "/ad-requests/{ad_request_id}/flag", auth.RolesRequired, adminOnly, false, (*api.Handlers).FlagAdRequest},
	}
}

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, cacheTTL time.Duration) {
	handlers := api.NewHandlers(deps.Services.Admin)
	responseCache := middleware.ResponseCacheMiddleware(deps.Services.Cache, cacheTTL, deps.Metrics)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(deps.Services.Auth)) // global: all routes must be authenticated

		v1.Route("/admin", func(admin chi.Router) {
			for _, route := range adminRoutes() {
				chain := []func(http.Handler) http.Handler{
					middleware.RequireRoles(route.mode, route.roles...),
				}
				if route.cacheable {
					chain = append(chain, responseCache)
				}
				admin.With(chain...).Method(route.method, route.pattern, route.handler(handlers))
			}
		})
	})
}
