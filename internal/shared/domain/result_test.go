package domain_test

import (
	"testing"

	"github.com/felixgeelhaar/nucleus/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Ok(t *testing.T) {
	res := domain.Ok(42)

	assert.True(t, res.IsOk())
	assert.Equal(t, 42, res.Value())
	assert.NoError(t, res.Err())
	assert.Equal(t, 0, res.Code())

	value, err := res.Unpack()
	assert.Equal(t, 42, value)
	assert.NoError(t, err)
}

func TestResult_OkMsg(t *testing.T) {
	res := domain.OkMsg("done", "operation succeeded")

	assert.True(t, res.IsOk())
	assert.Equal(t, "operation succeeded", res.Message())
}

func TestResult_Fail(t *testing.T) {
	res := domain.Fail[int](domain.NewNotFoundError("nothing here"))

	assert.False(t, res.IsOk())
	assert.Equal(t, 0, res.Value(), "failure carries the zero value")
	require.Error(t, res.Err())
	assert.ErrorIs(t, res.Err(), domain.ErrNotFound)
	assert.Equal(t, domain.CodeNotFound, res.Code())
}

func TestResult_FailAs(t *testing.T) {
	orig := domain.Fail[int](domain.NewConflictError("taken"))

	converted := domain.FailAs[int, string](orig)

	assert.False(t, converted.IsOk())
	assert.Equal(t, domain.CodeConflict, converted.Code())
	assert.ErrorIs(t, converted.Err(), domain.ErrConflict)
}

func TestResult_FailAs_PanicsOnSuccess(t *testing.T) {
	ok := domain.Ok(1)

	assert.Panics(t, func() {
		domain.FailAs[int, string](ok)
	})
}
