package domain

import (
	"errors"
	"strings"
)

// Role represents the access level of a user.
type Role int

const (
	RoleMember Role = iota
	RoleAdmin
)

// ErrInvalidRole is returned when a role token is not recognized.
var ErrInvalidRole = errors.New("invalid role value")

var roleNames = map[Role]string{
	RoleMember: "member",
	RoleAdmin:  "admin",
}

var roleValues = map[string]Role{
	"member": RoleMember,
	"admin":  RoleAdmin,
}

// AllRoles lists every role in declaration order, for metrics grouping.
func AllRoles() []Role {
	return []Role{RoleMember, RoleAdmin}
}

// ParseRole creates a Role from a string.
func ParseRole(s string) (Role, error) {
	r, ok := roleValues[strings.ToLower(s)]
	if !ok {
		return RoleMember, ErrInvalidRole
	}
	return r, nil
}

// String returns the string representation of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}
