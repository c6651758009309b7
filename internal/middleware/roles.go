package middleware

import (
	"errors"
	"net/http"

	"infinite-experiment/sponsorlink/internal/auth"
	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/logging"
)

// RequireRoles gates next on the caller's roles. It expects AuthMiddleware
// to have run; a request without claims is treated as unauthenticated.
func RequireRoles(mode auth.RoleMode, roles ...constants.Role) func(http.Handler) http.Handler {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}

	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			err := auth.Authorize(claims, mode, names...)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, auth.ErrUnauthenticated):
				common.RespondMessage(w, http.StatusUnauthorized, constants.MsgMissingCredentials)
			default:
				logging.Info("Role check failed",
					"user_id", claims.UserID(),
					"path", r.URL.Path,
					"mode", mode.String(),
					"reason", err.Error(),
				)
				common.RespondMessage(w, http.StatusForbidden, constants.MsgForbidden)
			}
		})
	}
}
