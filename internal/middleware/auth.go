package middleware

import (
	"errors"
	"net/http"

	"infinite-experiment/sponsorlink/internal/auth"
	"infinite-experiment/sponsorlink/internal/common"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/logging"
)

// Authenticator resolves request credentials to claims.
type Authenticator interface {
	Authenticate(r *http.Request) (auth.UserClaims, error)
}

func AuthMiddleware(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims, err := authenticator.Authenticate(r)
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				logging.Debug("Authentication rejected", "path", r.URL.Path, "reason", err.Error())
				message := constants.MsgInvalidCredentials
				if r.Header.Get("Authorization") == "" && r.Header.Get(constants.HeaderAPIKey) == "" {
					message = constants.MsgMissingCredentials
				}
				common.RespondMessage(w, http.StatusUnauthorized, message)
				return
			case err != nil:
				logging.Error("Authentication backend failure", "path", r.URL.Path, "error", err.Error())
				common.RespondMessage(w, http.StatusInternalServerError, constants.MsgInternalError)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
