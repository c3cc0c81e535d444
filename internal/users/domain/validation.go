package domain

import (
	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
)

// RegisterUserRequest is the payload for registering a user.
type RegisterUserRequest struct {
	Email string
	Name  string
	Role  string
}

// ValidateRegisterUser checks a registration request against the user
// business rules. Pure and deterministic, no side effects. A nil return
// means the request is acceptable.
func ValidateRegisterUser(req RegisterUserRequest) error {
	if _, err := NewEmail(req.Email); err != nil {
		return sharedDomain.NewValidationError("invalid email %q", req.Email)
	}
	if _, err := NewName(req.Name); err != nil {
		return sharedDomain.NewValidationError("invalid name: %v", err)
	}
	if req.Role != "" {
		if _, err := ParseRole(req.Role); err != nil {
			return sharedDomain.NewValidationError("unknown role %q", req.Role)
		}
	}
	return nil
}
