package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/db/repositories"
	"infinite-experiment/sponsorlink/internal/models/entities"
	gormModels "infinite-experiment/sponsorlink/internal/models/gorm"
)

type UserLookup interface {
	GetUserWithRoles(ctx context.Context, id uint) (*gormModels.User, error)
}

type KeyLookup interface {
	GetByKey(ctx context.Context, key string) (*entities.ApiKey, error)
}

// Authenticator resolves a request's credentials to UserClaims. Bearer tokens
// and API keys both end at a stored, active user whose roles are loaded
// fresh on every request.
type Authenticator struct {
	secret []byte
	users  UserLookup
	keys   KeyLookup
}

func NewAuthenticator(secret []byte, users UserLookup, keys KeyLookup) *Authenticator {
	return &Authenticator{secret: secret, users: users, keys: keys}
}

// Authenticate returns ErrUnauthenticated (wrapped) for missing or bad
// credentials; any other error is a backend failure.
func (a *Authenticator) Authenticate(r *http.Request) (UserClaims, error) {
	ctx := r.Context()
	authHeader := r.Header.Get("Authorization")
	apiKey := r.Header.Get(constants.HeaderAPIKey)

	switch {
	case strings.HasPrefix(strings.ToLower(authHeader), "bearer "):
		raw := strings.TrimSpace(authHeader[len("bearer "):])
		userID, tokenID, err := ParseToken(a.secret, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		user, err := a.activeUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return NewJWTClaims(user.ID, user.Username, user.RoleNames(), tokenID), nil

	case apiKey != "":
		keyRes, err := a.keys.GetByKey(ctx, apiKey)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown api key", ErrUnauthenticated)
		}
		if err != nil {
			return nil, err
		}
		if !keyRes.Status {
			return nil, fmt.Errorf("%w: inactive api key", ErrUnauthenticated)
		}
		user, err := a.activeUser(ctx, keyRes.UserID)
		if err != nil {
			return nil, err
		}
		return NewAPIKeyClaims(user.ID, user.Username, user.RoleNames(), keyRes.ID), nil

	default:
		return nil, fmt.Errorf("%w: no credentials", ErrUnauthenticated)
	}
}

func (a *Authenticator) activeUser(ctx context.Context, id uint) (*gormModels.User, error) {
	user, err := a.users.GetUserWithRoles(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %d not found", ErrUnauthenticated, id)
	}
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: user %d inactive", ErrUnauthenticated, id)
	}
	return user, nil
}
