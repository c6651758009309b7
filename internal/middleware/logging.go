// middleware/logging.go
package middleware

import (
	"net/http"
	"strings"

	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/logging"
)

var redactedHeaders = map[string]bool{
	"authorization":                         true,
	strings.ToLower(constants.HeaderAPIKey): true,
	"cookie":                                true,
}

// DebugRequestLogging logs each incoming request with its headers at debug
// level. Credentials are redacted.
func DebugRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := make(map[string]string, len(r.Header))
		for name, vals := range r.Header {
			if redactedHeaders[strings.ToLower(name)] {
				headers[name] = "[redacted]"
				continue
			}
			headers[name] = strings.Join(vals, ",")
		}

		logging.Debug("→ request",
			"method", r.Method,
			"url", r.URL.String(),
			"remote_addr", r.RemoteAddr,
			"headers", headers,
		)

		next.ServeHTTP(w, r)
	})
}
