package domain_test

import (
	"testing"

	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Status
	}{
		{"pending", domain.StatusPending},
		{"in_progress", domain.StatusInProgress},
		{"COMPLETED", domain.StatusCompleted},
		{"Archived", domain.StatusArchived},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	_, err := domain.ParseStatus("approved-ish")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "in_progress", domain.StatusInProgress.String())
	assert.Equal(t, "unknown", domain.Status(99).String())
	assert.False(t, domain.Status(99).IsValid())
}

func TestParsePriority(t *testing.T) {
	got, err := domain.ParsePriority("URGENT")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityUrgent, got)

	got, err = domain.ParsePriority("  high ")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, got)

	_, err = domain.ParsePriority("critical")
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "medium", domain.PriorityMedium.String())
	assert.Equal(t, "unknown", domain.Priority(42).String())
	assert.False(t, domain.Priority(42).IsValid())
}

func TestPriority_Weight(t *testing.T) {
	assert.Greater(t, domain.PriorityUrgent.Weight(), domain.PriorityHigh.Weight())
	assert.Greater(t, domain.PriorityLow.Weight(), domain.PriorityNone.Weight())
}
