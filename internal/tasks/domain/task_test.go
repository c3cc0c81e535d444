package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task, err := domain.NewTask("Complete Phase 0")

	require.NoError(t, err)
	assert.Equal(t, "Complete Phase 0", task.Title())
	assert.Equal(t, domain.StatusPending, task.Status())
	assert.Equal(t, domain.PriorityNone, task.Priority())
	assert.True(t, task.IsProvisional(), "identity is assigned by the repository")
	assert.False(t, task.IsCompleted())
	assert.False(t, task.IsArchived())
}

func TestNewTask_EmptyTitle(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}
	for _, title := range tests {
		t.Run(title, func(t *testing.T) {
			_, err := domain.NewTask(title)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrEmptyTitle)
		})
	}
}

func TestNewTask_TrimsTitle(t *testing.T) {
	task, err := domain.NewTask("  Test Task  ")

	require.NoError(t, err)
	assert.Equal(t, "Test Task", task.Title())
}

func TestNewTask_TitleTooLong(t *testing.T) {
	long := make([]byte, domain.MaxTitleLength+1)
	for i := range long {
		long[i] = 'x'
	}

	_, err := domain.NewTask(string(long))

	assert.ErrorIs(t, err, domain.ErrTitleTooLong)
}

func TestTask_SetTitle(t *testing.T) {
	task, _ := domain.NewTask("Original")

	err := task.SetTitle("Updated")

	require.NoError(t, err)
	assert.Equal(t, "Updated", task.Title())
}

func TestTask_SetDescription(t *testing.T) {
	task, _ := domain.NewTask("Task")

	require.NoError(t, task.SetDescription("  details  "))
	assert.Equal(t, "details", task.Description())

	require.NoError(t, task.SetDescription(""))
	assert.Empty(t, task.Description())
}

func TestTask_SetStatus(t *testing.T) {
	task, _ := domain.NewTask("Task")

	require.NoError(t, task.SetStatus(domain.StatusInProgress))
	assert.Equal(t, domain.StatusInProgress, task.Status())

	// Transitions between non-archived states are unconstrained.
	require.NoError(t, task.SetStatus(domain.StatusPending))
	assert.Equal(t, domain.StatusPending, task.Status())
}

func TestTask_Complete(t *testing.T) {
	task, _ := domain.NewTask("Task")

	require.NoError(t, task.Complete())

	assert.True(t, task.IsCompleted())
	require.NotNil(t, task.CompletedAt())
	assert.WithinDuration(t, time.Now().UTC(), *task.CompletedAt(), time.Second)

	err := task.Complete()
	assert.ErrorIs(t, err, domain.ErrTaskAlreadyComplete)
}

func TestTask_ReopenClearsCompletedAt(t *testing.T) {
	task, _ := domain.NewTask("Task")
	require.NoError(t, task.Complete())

	require.NoError(t, task.SetStatus(domain.StatusPending))

	assert.Nil(t, task.CompletedAt())
	assert.False(t, task.IsCompleted())
}

func TestTask_ArchivedRejectsMutation(t *testing.T) {
	task, _ := domain.NewTask("Task")
	require.NoError(t, task.Archive())

	assert.ErrorIs(t, task.SetTitle("nope"), domain.ErrTaskArchived)
	assert.ErrorIs(t, task.SetDescription("nope"), domain.ErrTaskArchived)
	assert.ErrorIs(t, task.SetPriority(domain.PriorityHigh), domain.ErrTaskArchived)
	assert.ErrorIs(t, task.SetStatus(domain.StatusPending), domain.ErrTaskArchived)

	// Re-archiving is idempotent.
	assert.NoError(t, task.Archive())
}

func TestTask_SetDueDate(t *testing.T) {
	task, _ := domain.NewTask("Task")
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, task.SetDueDate(&due))
	require.NotNil(t, task.DueDate())
	assert.Equal(t, due, *task.DueDate())

	require.NoError(t, task.SetDueDate(nil))
	assert.Nil(t, task.DueDate())
}

func TestTask_Clone(t *testing.T) {
	task, _ := domain.NewTask("Task")
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, task.SetDueDate(&due))

	clone := task.Clone()
	shifted := due.Add(24 * time.Hour)
	require.NoError(t, clone.SetDueDate(&shifted))
	require.NoError(t, clone.SetTitle("Changed"))

	assert.Equal(t, "Task", task.Title())
	assert.Equal(t, due, *task.DueDate())
}

func TestTaskFilter_Match(t *testing.T) {
	task, _ := domain.NewTask("Task")
	require.NoError(t, task.SetPriority(domain.PriorityHigh))

	pending := domain.StatusPending
	completed := domain.StatusCompleted
	high := domain.PriorityHigh
	low := domain.PriorityLow

	tests := []struct {
		name   string
		filter domain.TaskFilter
		want   bool
	}{
		{"empty filter matches", domain.TaskFilter{}, true},
		{"matching status", domain.TaskFilter{Status: &pending}, true},
		{"mismatched status", domain.TaskFilter{Status: &completed}, false},
		{"matching both", domain.TaskFilter{Status: &pending, Priority: &high}, true},
		{"one field mismatched", domain.TaskFilter{Status: &pending, Priority: &low}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(task))
		})
	}
}
