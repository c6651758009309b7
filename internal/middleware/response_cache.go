package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/logging"
	"infinite-experiment/sponsorlink/internal/metrics"

	"golang.org/x/sync/singleflight"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// CacheKey identifies a cacheable request by method, path and its query
// parameters in sorted order.
func CacheKey(r *http.Request) string {
	key := r.Method + " " + r.URL.Path
	if q := r.URL.Query(); len(q) > 0 {
		key += "?" + url.Values(q).Encode()
	}
	return key
}

// ResponseCacheMiddleware memoizes successful GET responses for ttl.
// Backend errors degrade to a live call; concurrent misses on one key
// share a single execution of next.
func ResponseCacheMiddleware(cache common.CacheInterface, ttl time.Duration, metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	var group singleflight.Group

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := CacheKey(r)
			endpoint := routePatternOf(r)

			payload, found, err := cache.Get(ctx, key)
			if err != nil {
				metricsReg.CacheErrorsTotal.WithLabelValues("get").Inc()
				logging.Warn("Response cache read failed, serving live", "key", key, "error", err.Error())
			}
			if found {
				var cached cachedResponse
				if err := json.Unmarshal(payload, &cached); err == nil {
					metricsReg.CacheHitsTotal.WithLabelValues(endpoint).Inc()
					writeCached(w, &cached, "HIT")
					return
				}
				logging.Warn("Discarding undecodable cache entry", "key", key)
			}
			metricsReg.CacheMissesTotal.WithLabelValues(endpoint).Inc()

			epoch, err := cache.Epoch(ctx)
			if err != nil {
				metricsReg.CacheErrorsTotal.WithLabelValues("epoch").Inc()
				logging.Warn("Response cache epoch unavailable, serving live", "key", key, "error", err.Error())
				next.ServeHTTP(w, r)
				return
			}

			// a fill only serves callers that arrived within its epoch; one
			// started before a Clear is never joined by a request after it
			flightKey := strconv.FormatUint(epoch, 10) + "|" + key

			v, _, _ := group.Do(flightKey, func() (interface{}, error) {
				// followers depend on this run; do not let the leader's client cancel it
				leaderReq := r.WithContext(context.WithoutCancel(ctx))

				capture := newResponseCapture()
				next.ServeHTTP(capture, leaderReq)
				res := capture.result()

				if res.Status == http.StatusOK {
					data, err := json.Marshal(res)
					stored := false
					if err == nil {
						stored, err = cache.Set(leaderReq.Context(), key, data, ttl, epoch)
					}
					if err != nil {
						metricsReg.CacheErrorsTotal.WithLabelValues("set").Inc()
						logging.Warn("Response cache write failed", "key", key, "error", err.Error())
					} else if !stored {
						logging.Debug("Response cache invalidated during fill, not stored", "key", key, "epoch", epoch)
					}
				}
				return res, nil
			})

			writeCached(w, v.(*cachedResponse), "MISS")
		})
	}
}

func writeCached(w http.ResponseWriter, res *cachedResponse, state string) {
	if res.ContentType != "" {
		w.Header().Set("Content-Type", res.ContentType)
	}
	w.Header().Set(constants.HeaderCache, state)
	w.WriteHeader(res.Status)
	_, _ = w.Write(res.Body)
}

// responseCapture buffers a handler's response so it can be both cached and
// replayed to every waiting caller.
type responseCapture struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseCapture() *responseCapture {
	return &responseCapture{header: make(http.Header)}
}

func (c *responseCapture) Header() http.Header { return c.header }

func (c *responseCapture) WriteHeader(code int) {
	if c.status == 0 {
		c.status = code
	}
}

func (c *responseCapture) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	return c.body.Write(b)
}

func (c *responseCapture) result() *cachedResponse {
	status := c.status
	if status == 0 {
		status = http.StatusOK
	}
	return &cachedResponse{
		Status:      status,
		ContentType: c.header.Get("Content-Type"),
		Body:        append([]byte(nil), c.body.Bytes()...),
	}
}
