package domain

// UserFilter selects users by field equality. A nil field means no
// constraint on that field; the zero filter matches every user.
type UserFilter struct {
	Email  *Email
	Role   *Role
	Active *bool
}

// Match reports whether the user satisfies every constrained field.
func (f UserFilter) Match(u *User) bool {
	if f.Email != nil && !u.Email().Equals(*f.Email) {
		return false
	}
	if f.Role != nil && u.Role() != *f.Role {
		return false
	}
	if f.Active != nil && u.IsActive() != *f.Active {
		return false
	}
	return true
}

// IsEmpty reports whether the filter constrains nothing.
func (f UserFilter) IsEmpty() bool {
	return f.Email == nil && f.Role == nil && f.Active == nil
}
