package models

import (
	"errors"
	"fmt"
)

// Role is the closed set of channel membership roles. Anything else is
// rejected at the data boundary via ParseRole.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMember   Role = "member"
	RoleObserver Role = "observer"
)

var ErrUnknownRole = errors.New("unknown channel role")

// ParseRole converts a raw string into a Role, rejecting values outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleMember, RoleObserver:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// CanSendMessages reports whether the role may post messages. Observers
// can read but not send.
func (r Role) CanSendMessages() bool {
	return r == RoleAdmin || r == RoleMember
}

// CanManageChannel reports whether the role may rename or delete the
// channel and add or remove members.
func (r Role) CanManageChannel() bool {
	return r == RoleAdmin
}
