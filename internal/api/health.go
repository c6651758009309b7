package api

import (
	"context"
	"net/http"
	"time"

	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/models/entities"
)

const healthPingTimeout = 2 * time.Second

// DBPinger is satisfied by *sqlx.DB and *sql.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheckHandler handles GET /healthCheck
//
// Reports the database and response cache backends. Any backend down turns
// the overall status to "down" and the response code to 503.
func HealthCheckHandler(db DBPinger, cache common.CacheInterface, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		services := make(map[string]entities.ServiceStatus)

		services["database"] = pingStatus(db.PingContext(ctx), "Database connected")
		services["cache"] = pingStatus(cache.Ping(ctx), "Cache reachable")

		overallStatus := "ok"
		code := http.StatusOK
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				code = http.StatusServiceUnavailable
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}
		common.RespondJSON(w, code, resp)
	}
}

func pingStatus(err error, okDetails string) entities.ServiceStatus {
	if err != nil {
		return entities.ServiceStatus{Status: "down", Details: err.Error()}
	}
	return entities.ServiceStatus{Status: "ok", Details: okDetails}
}
