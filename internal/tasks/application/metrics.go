package application

import (
	"context"

	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
)

// TaskMetrics is a frequency table over the enumerated task fields. Every
// known status and priority has an entry, zero when unused.
type TaskMetrics struct {
	Total      int
	ByStatus   map[string]int
	ByPriority map[string]int
}

// Metrics scans all tasks once and counts them per status and priority.
// An empty repository yields total zero and all-zero counts, not a failure.
func (s *TaskService) Metrics(ctx context.Context) sharedDomain.Result[TaskMetrics] {
	metrics := TaskMetrics{
		ByStatus:   make(map[string]int, len(domain.AllStatuses())),
		ByPriority: make(map[string]int, len(domain.AllPriorities())),
	}
	for _, status := range domain.AllStatuses() {
		metrics.ByStatus[status.String()] = 0
	}
	for _, priority := range domain.AllPriorities() {
		metrics.ByPriority[priority.String()] = 0
	}

	for _, task := range s.repo.FindAll(ctx) {
		metrics.Total++
		metrics.ByStatus[task.Status().String()]++
		metrics.ByPriority[task.Priority().String()]++
	}

	return sharedDomain.Ok(metrics)
}
