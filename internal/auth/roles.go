package auth

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// RoleMode selects how a role set is matched against the caller.
type RoleMode int

const (
	// RolesRequired: the caller must hold every role in the set.
	RolesRequired RoleMode = iota
	// RolesAccepted: the caller must hold at least one role in the set.
	RolesAccepted
)

func (m RoleMode) String() string {
	if m == RolesAccepted {
		return "accepted"
	}
	return "required"
}

// Authorize checks claims against roles under mode.
func Authorize(claims UserClaims, mode RoleMode, roles ...string) error {
	if claims == nil {
		return ErrUnauthenticated
	}

	switch mode {
	case RolesAccepted:
		for _, r := range roles {
			if claims.HasRole(r) {
				return nil
			}
		}
		if len(roles) == 0 {
			return nil
		}
	default:
		missing := make([]string, 0, len(roles))
		for _, r := range roles {
			if !claims.HasRole(r) {
				missing = append(missing, r)
			}
		}
		if len(missing) == 0 {
			return nil
		}
		return fmt.Errorf("%w: missing roles %s", ErrForbidden, strings.Join(missing, ","))
	}

	return fmt.Errorf("%w: needs one of %s", ErrForbidden, strings.Join(roles, ","))
}
