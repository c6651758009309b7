package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/models/dtos"
	"infinite-experiment/sponsorlink/internal/services"

	"github.com/go-chi/chi/v5"
)

// Mock AdminService; unset funcs fail loudly
type mockAdminService struct {
	AdminService
	toggleActiveFunc func(ctx context.Context, id uint, req dtos.ToggleActiveRequest) (*dtos.ToggleActiveResponse, error)
	flagCampaignFunc func(ctx context.Context, id uint) (*dtos.FlagCampaignResponse, error)
	approveFunc      func(ctx context.Context, id uint) (*dtos.ApproveSponsorResponse, error)
	usersFunc        func(ctx context.Context) ([]dtos.UserSummary, error)
	dashboardFunc    func(ctx context.Context) (*dtos.DashboardResponse, error)
}

func (m *mockAdminService) ToggleUserActive(ctx context.Context, id uint, req dtos.ToggleActiveRequest) (*dtos.ToggleActiveResponse, error) {
	return m.toggleActiveFunc(ctx, id, req)
}

func (m *mockAdminService) FlagCampaign(ctx context.Context, id uint) (*dtos.FlagCampaignResponse, error) {
	return m.flagCampaignFunc(ctx, id)
}

func (m *mockAdminService) ApproveSponsor(ctx context.Context, id uint) (*dtos.ApproveSponsorResponse, error) {
	return m.approveFunc(ctx, id)
}

func (m *mockAdminService) Users(ctx context.Context) ([]dtos.UserSummary, error) {
	return m.usersFunc(ctx)
}

func (m *mockAdminService) DashboardStats(ctx context.Context) (*dtos.DashboardResponse, error) {
	return m.dashboardFunc(ctx)
}

func newTestRouter(svc AdminService) http.Handler {
	h := NewHandlers(svc)
	r := chi.NewRouter()
	r.Get("/dashboard", h.Dashboard())
	r.Get("/users", h.Users())
	r.Post("/users/{user_id}/toggle-active", h.ToggleUserActive())
	r.Post("/campaigns/{campaign_id}/flag", h.FlagCampaign())
	r.Post("/sponsors/{sponsor_id}/approve", h.ApproveSponsor())
	return r
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body dtos.MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body %q: %v", rr.Body.String(), err)
	}
	return body.Message
}

func TestToggleUserActiveHandler_Success(t *testing.T) {
	var gotID uint
	var gotActive bool
	svc := &mockAdminService{
		toggleActiveFunc: func(ctx context.Context, id uint, req dtos.ToggleActiveRequest) (*dtos.ToggleActiveResponse, error) {
			gotID, gotActive = id, *req.Active
			return &dtos.ToggleActiveResponse{Message: "User has been deactivated successfully.", UserID: id, Active: false}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/users/7/toggle-active", strings.NewReader(`{"active": false}`))
	rr := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if gotID != 7 || gotActive {
		t.Errorf("Expected service call with (7, false), got (%d, %v)", gotID, gotActive)
	}

	var resp dtos.ToggleActiveResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.UserID != 7 || resp.Active {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestToggleUserActiveHandler_BadPayload(t *testing.T) {
	svc := &mockAdminService{
		toggleActiveFunc: func(ctx context.Context, id uint, req dtos.ToggleActiveRequest) (*dtos.ToggleActiveResponse, error) {
			if req.Active == nil {
				return nil, services.ErrInvalidPayload
			}
			t.Fatalf("Service should not be reached with a valid value in this test")
			return nil, nil
		},
	}

	bodies := []string{`{}`, `{"active": "yes"}`, `{"active": null}`, `not json`, `[true]`, ``}
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/users/7/toggle-active", strings.NewReader(body))
		rr := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Body %q: expected 400, got %d", body, rr.Code)
			continue
		}
		if msg := decodeMessage(t, rr); msg != constants.MsgActiveFieldRequired {
			t.Errorf("Body %q: unexpected message %q", body, msg)
		}
	}
}

func TestToggleUserActiveHandler_NotFound(t *testing.T) {
	svc := &mockAdminService{
		toggleActiveFunc: func(ctx context.Context, id uint, req dtos.ToggleActiveRequest) (*dtos.ToggleActiveResponse, error) {
			return nil, services.ErrNotFound
		},
	}

	for _, path := range []string{"/users/99/toggle-active", "/users/abc/toggle-active"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"active": true}`))
		rr := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rr.Code)
			continue
		}
		if msg := decodeMessage(t, rr); msg != constants.MsgUserNotFound {
			t.Errorf("%s: unexpected message %q", path, msg)
		}
	}
}

func TestFlagCampaignHandler(t *testing.T) {
	svc := &mockAdminService{
		flagCampaignFunc: func(ctx context.Context, id uint) (*dtos.FlagCampaignResponse, error) {
			if id != 3 {
				return nil, services.ErrNotFound
			}
			return &dtos.FlagCampaignResponse{Message: "Campaign has been flagged.", CampaignID: 3, Flagged: true}, nil
		},
	}

	rr := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/campaigns/3/flag", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	var resp map[string]interface{}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["campaign_id"] != float64(3) || resp["flagged"] != true {
		t.Errorf("Unexpected body: %v", resp)
	}

	rr = httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/campaigns/4/flag", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rr.Code)
	}
	if msg := decodeMessage(t, rr); msg != constants.MsgCampaignNotFound {
		t.Errorf("Unexpected message %q", msg)
	}
}

func TestApproveSponsorHandler_NotFound(t *testing.T) {
	svc := &mockAdminService{
		approveFunc: func(ctx context.Context, id uint) (*dtos.ApproveSponsorResponse, error) {
			return nil, services.ErrNotFound
		},
	}

	rr := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/sponsors/5/approve", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rr.Code)
	}
	if msg := decodeMessage(t, rr); msg != constants.MsgSponsorNotFoundOrApproved {
		t.Errorf("Unexpected message %q", msg)
	}
}

func TestListHandler_EmptyIsArray(t *testing.T) {
	svc := &mockAdminService{
		usersFunc: func(ctx context.Context) ([]dtos.UserSummary, error) { return nil, nil },
	}

	rr := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Errorf("Expected [], got %s", body)
	}
}

func TestServiceErrorIsNotEchoed(t *testing.T) {
	svc := &mockAdminService{
		dashboardFunc: func(ctx context.Context) (*dtos.DashboardResponse, error) {
			return nil, errors.New("pq: relation \"users\" does not exist")
		},
	}

	rr := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}
	if msg := decodeMessage(t, rr); msg != constants.MsgInternalError {
		t.Errorf("Expected generic message, got %q", msg)
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

type downCache struct {
	common.CacheInterface
}

func (downCache) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthCheckHandler(t *testing.T) {
	okDB := pingerFunc(func(context.Context) error { return nil })
	upSince := time.Now().Add(-time.Minute)

	rr := httptest.NewRecorder()
	HealthCheckHandler(okDB, common.NewCacheService(time.Minute, time.Minute), upSince).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	HealthCheckHandler(okDB, downCache{}, upSince).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rr.Code)
	}
	var resp map[string]interface{}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["status"] != "down" {
		t.Errorf("Expected overall status down, got %v", resp["status"])
	}
}
