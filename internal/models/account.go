package models

import (
	"fmt"
	"strings"
)

// Role is one of the closed set of account roles
type Role string

// Account role constants
const (
	RoleUser          Role = "USER"
	RoleModerator     Role = "MODERATOR"
	RoleAdministrator Role = "ADMINISTRATOR"
)

// ParseRole converts a role name to a Role constant, case-insensitively.
//
// If the name does not match any known role, an error is returned together with an empty Role.
func ParseRole(name string) (Role, error) {
	switch Role(strings.ToUpper(name)) {
	case RoleUser:
		return RoleUser, nil
	case RoleModerator:
		return RoleModerator, nil
	case RoleAdministrator:
		return RoleAdministrator, nil
	default:
		return "", fmt.Errorf("unknown role: %s", name)
	}
}

// Account represents a user account. Login is immutable after creation.
type Account struct {
	Login        string `json:"login"`
	PasswordHash string `json:"-"` // Never serialize password hash
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Roles        []Role `json:"roles"`
}

// HasRole reports whether the account holds the given role
func (a *Account) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AddRole adds a role to the account's role set.
// Returns true if the set changed, false if the role was already present.
func (a *Account) AddRole(role Role) bool {
	if a.HasRole(role) {
		return false
	}
	a.Roles = append(a.Roles, role)
	return true
}

// RemoveRole removes a role from the account's role set.
// Returns true if the set changed. Removing the last remaining role is a
// no-op: the role set must never be empty after a mutation.
func (a *Account) RemoveRole(role Role) bool {
	if len(a.Roles) <= 1 {
		return false
	}
	for i, r := range a.Roles {
		if r == role {
			a.Roles = append(a.Roles[:i], a.Roles[i+1:]...)
			return true
		}
	}
	return false
}
