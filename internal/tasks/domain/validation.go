package domain

import (
	"strings"
	"time"

	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
)

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

// ValidateCreateTask checks a creation request against the task business
// rules. Pure and deterministic: same input, same verdict, no side effects.
// A nil return means the request is acceptable.
func ValidateCreateTask(req CreateTaskRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return sharedDomain.NewValidationError("title must not be empty")
	}
	if len(title) > MaxTitleLength {
		return sharedDomain.NewValidationError("title must not exceed %d characters", MaxTitleLength)
	}
	if len(strings.TrimSpace(req.Description)) > MaxDescriptionLength {
		return sharedDomain.NewValidationError("description must not exceed %d characters", MaxDescriptionLength)
	}
	if req.Priority != "" {
		if _, err := ParsePriority(req.Priority); err != nil {
			return sharedDomain.NewValidationError("unknown priority %q", req.Priority)
		}
	}
	return nil
}
