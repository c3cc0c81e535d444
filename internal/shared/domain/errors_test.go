package domain_test

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/nucleus/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  *domain.DomainError
		code int
		kind error
	}{
		{"validation", domain.NewValidationError("bad input"), domain.CodeInvalid, domain.ErrValidation},
		{"not found", domain.NewNotFoundError("missing"), domain.CodeNotFound, domain.ErrNotFound},
		{"conflict", domain.NewConflictError("taken"), domain.CodeConflict, domain.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.code, domain.CodeOf(tt.err))
		})
	}
}

func TestDomainError_Message(t *testing.T) {
	err := domain.NewValidationError("title must not exceed %d characters", 200)
	assert.Equal(t, "title must not exceed 200 characters", err.Error())
}

func TestWrapError(t *testing.T) {
	plain := errors.New("boom")
	wrapped := domain.WrapError(plain)

	require.NotNil(t, wrapped)
	assert.Equal(t, domain.CodeInternal, wrapped.Code())
	assert.ErrorIs(t, wrapped, plain)
}

func TestWrapError_PreservesDomainError(t *testing.T) {
	notFound := domain.NewNotFoundError("missing")

	wrapped := domain.WrapError(notFound)

	assert.Equal(t, domain.CodeNotFound, wrapped.Code())
	assert.Same(t, notFound, wrapped)
}

func TestWrapError_Nil(t *testing.T) {
	assert.Nil(t, domain.WrapError(nil))
}

func TestCodeOf_Unknown(t *testing.T) {
	assert.Equal(t, domain.CodeInternal, domain.CodeOf(errors.New("anything")))
}
