package auth

import "infinite-experiment/sponsorlink/internal/constants"

// UserClaims is the authenticated caller as seen by handlers and the role gate.
type UserClaims interface {
	UserID() uint
	Username() string
	Roles() []string
	HasRole(role string) bool
	Source() string
}

type identity struct {
	UserIDValue   uint
	UsernameValue string
	RoleValues    []string
}

func (c *identity) UserID() uint     { return c.UserIDValue }
func (c *identity) Username() string { return c.UsernameValue }
func (c *identity) Roles() []string  { return c.RoleValues }
func (c *identity) HasRole(role string) bool {
	for _, r := range c.RoleValues {
		if r == role {
			return true
		}
	}
	return false
}

type JWTClaims struct {
	identity
	TokenID string
}

func (c *JWTClaims) Source() string { return string(constants.RequestSourceJWT) }

type APIKeyClaims struct {
	identity
	KeyID int64
}

func (c *APIKeyClaims) Source() string { return string(constants.RequestSourceAPIKey) }

// NewJWTClaims builds claims for a caller authenticated by bearer token.
func NewJWTClaims(userID uint, username string, roles []string, tokenID string) *JWTClaims {
	return &JWTClaims{
		identity: identity{UserIDValue: userID, UsernameValue: username, RoleValues: roles},
		TokenID:  tokenID,
	}
}

// NewAPIKeyClaims builds claims for a caller authenticated by API key.
func NewAPIKeyClaims(userID uint, username string, roles []string, keyID int64) *APIKeyClaims {
	return &APIKeyClaims{
		identity: identity{UserIDValue: userID, UsernameValue: username, RoleValues: roles},
		KeyID:    keyID,
	}
}
