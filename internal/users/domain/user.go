package domain

import (
	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
)

// User represents a user account in the system.
type User struct {
	sharedDomain.AuditableEntity
	email  Email
	name   Name
	role   Role
	active bool
}

// NewUser creates a provisional user with the given email and name. New
// users start active as members; identity and version are assigned when
// the user is stored.
func NewUser(email Email, name Name) *User {
	return &User{
		email:  email,
		name:   name,
		role:   RoleMember,
		active: true,
	}
}

// Getters

func (u *User) Email() Email   { return u.email }
func (u *User) Name() Name     { return u.name }
func (u *User) Role() Role     { return u.role }
func (u *User) IsActive() bool { return u.active }

// UpdateName changes the user's name.
func (u *User) UpdateName(name Name) {
	if u.name.Equals(name) {
		return
	}
	u.name = name
	u.Touch()
}

// SetRole changes the user's role.
func (u *User) SetRole(role Role) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.role = role
	u.Touch()
	return nil
}

// Deactivate marks the user inactive. Idempotent.
func (u *User) Deactivate() {
	if !u.active {
		return
	}
	u.active = false
	u.Touch()
}

// Activate marks the user active again. Idempotent.
func (u *User) Activate() {
	if u.active {
		return
	}
	u.active = true
	u.Touch()
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	clone := *u
	return &clone
}
