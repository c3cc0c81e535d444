package domain_test

import (
	"testing"

	"github.com/felixgeelhaar/nucleus/internal/users/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *domain.User {
	t.Helper()
	email, err := domain.NewEmail("ada@example.com")
	require.NoError(t, err)
	name, err := domain.NewName("Ada Lovelace")
	require.NoError(t, err)
	return domain.NewUser(email, name)
}

func TestNewUser(t *testing.T) {
	user := newTestUser(t)

	assert.Equal(t, "ada@example.com", user.Email().String())
	assert.Equal(t, "Ada Lovelace", user.Name().String())
	assert.Equal(t, domain.RoleMember, user.Role())
	assert.True(t, user.IsActive())
	assert.True(t, user.IsProvisional(), "identity is assigned by the repository")
}

func TestUser_UpdateName(t *testing.T) {
	user := newTestUser(t)
	name, err := domain.NewName("Countess Lovelace")
	require.NoError(t, err)

	user.UpdateName(name)

	assert.Equal(t, "Countess Lovelace", user.Name().String())
}

func TestUser_SetRole(t *testing.T) {
	user := newTestUser(t)

	require.NoError(t, user.SetRole(domain.RoleAdmin))
	assert.Equal(t, domain.RoleAdmin, user.Role())

	assert.ErrorIs(t, user.SetRole(domain.Role(42)), domain.ErrInvalidRole)
}

func TestUser_DeactivateActivate(t *testing.T) {
	user := newTestUser(t)

	user.Deactivate()
	assert.False(t, user.IsActive())

	user.Deactivate() // Idempotent
	assert.False(t, user.IsActive())

	user.Activate()
	assert.True(t, user.IsActive())
}

func TestUser_Clone(t *testing.T) {
	user := newTestUser(t)

	clone := user.Clone()
	clone.Deactivate()

	assert.True(t, user.IsActive())
	assert.False(t, clone.IsActive())
}

func TestParseRole(t *testing.T) {
	role, err := domain.ParseRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	_, err = domain.ParseRole("owner")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestUserFilter_Match(t *testing.T) {
	user := newTestUser(t)
	email := user.Email()
	otherEmail, _ := domain.NewEmail("grace@example.com")
	member := domain.RoleMember
	admin := domain.RoleAdmin
	active := true

	tests := []struct {
		name   string
		filter domain.UserFilter
		want   bool
	}{
		{"empty filter matches", domain.UserFilter{}, true},
		{"matching email", domain.UserFilter{Email: &email}, true},
		{"mismatched email", domain.UserFilter{Email: &otherEmail}, false},
		{"matching role and active", domain.UserFilter{Role: &member, Active: &active}, true},
		{"mismatched role", domain.UserFilter{Role: &admin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(user))
		})
	}
}

func TestValidateRegisterUser(t *testing.T) {
	valid := domain.RegisterUserRequest{Email: "a@b.co", Name: "A", Role: "admin"}
	assert.NoError(t, domain.ValidateRegisterUser(valid))

	assert.Error(t, domain.ValidateRegisterUser(domain.RegisterUserRequest{Email: "nope", Name: "A"}))
	assert.Error(t, domain.ValidateRegisterUser(domain.RegisterUserRequest{Email: "a@b.co", Name: "  "}))
	assert.Error(t, domain.ValidateRegisterUser(domain.RegisterUserRequest{Email: "a@b.co", Name: "A", Role: "owner"}))
}
