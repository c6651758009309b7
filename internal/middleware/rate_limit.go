package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/metrics"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 3 * time.Minute
	limiterSweepInterval = time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than it takes them to refill are dropped, so the map only holds
// clients seen recently.
type IPRateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*ipLimiter
	rps         rate.Limit
	burst       int
	whitelisted map[string]bool
	idleTTL     time.Duration
	lastSweep   time.Time
	now         func() time.Time
}

func NewIPRateLimiter(rps float64, burst int, whitelist []string) *IPRateLimiter {
	wl := make(map[string]bool, len(whitelist))
	for _, ip := range whitelist {
		wl[ip] = true
	}

	// an evicted bucket must already be full again
	idle := limiterIdleTTL
	if rps > 0 {
		if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idle {
			idle = refill
		}
	}

	return &IPRateLimiter{
		limiters:    make(map[string]*ipLimiter),
		rps:         rate.Limit(rps),
		burst:       burst,
		whitelisted: wl,
		idleTTL:     idle,
		lastSweep:   time.Now(),
		now:         time.Now,
	}
}

func (l *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		l.sweep(now)
	}

	if entry, exists := l.limiters[ip]; exists {
		entry.lastSeen = now
		return entry.limiter
	}
	limiter := rate.NewLimiter(l.rps, l.burst)
	l.limiters[ip] = &ipLimiter{limiter: limiter, lastSeen: now}
	return limiter
}

// sweep must be called with mu held.
func (l *IPRateLimiter) sweep(now time.Time) {
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.idleTTL {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

func (l *IPRateLimiter) Allow(ip string) bool {
	if l.whitelisted[ip] {
		return true
	}
	return l.getLimiter(ip).Allow()
}

func RateLimitMiddleware(limiter *IPRateLimiter, metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.Allow(ip) {
				metricsReg.RateLimitedTotal.Inc()
				common.RespondMessage(w, http.StatusTooManyRequests, constants.MsgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
