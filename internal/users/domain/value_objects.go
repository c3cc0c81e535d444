package domain

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyEmail   = errors.New("user email cannot be empty")
	ErrInvalidEmail = errors.New("user email is malformed")
	ErrEmailTooLong = errors.New("user email exceeds maximum length")
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrNameTooLong  = errors.New("user name exceeds maximum length")
)

const (
	// MaxEmailLength is the maximum allowed email length.
	MaxEmailLength = 254
	// MaxNameLength is the maximum allowed name length.
	MaxNameLength = 255
)

// emailPattern accepts a pragmatic subset of valid addresses: a local part,
// an @, and a dotted domain ending in a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a normalized, validated email address. Addresses are stored
// lowercase, so two spellings of the same mailbox compare equal.
type Email struct {
	value string
}

// NewEmail normalizes and validates the given address.
func NewEmail(raw string) (Email, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case addr == "":
		return Email{}, ErrEmptyEmail
	case len(addr) > MaxEmailLength:
		return Email{}, ErrEmailTooLong
	case !emailPattern.MatchString(addr):
		return Email{}, ErrInvalidEmail
	}
	return Email{value: addr}, nil
}

func (e Email) String() string { return e.value }

// Equals reports whether both values hold the same normalized address.
func (e Email) Equals(other Email) bool { return e.value == other.value }

// Name is a display name, trimmed of surrounding whitespace.
type Name struct {
	value string
}

// NewName validates the given display name.
func NewName(raw string) (Name, error) {
	n := strings.TrimSpace(raw)
	if n == "" {
		return Name{}, ErrEmptyName
	}
	if len(n) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: n}, nil
}

func (n Name) String() string { return n.value }

// Equals reports whether both values hold the same name.
func (n Name) Equals(other Name) bool { return n.value == other.value }
