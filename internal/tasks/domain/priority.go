package domain

import (
	"errors"
	"strings"
)

// Priority ranks task urgency. Values are ordered, so a higher priority
// compares greater than a lower one.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// ErrInvalidPriority is returned when a priority token is not recognized.
var ErrInvalidPriority = errors.New("invalid priority value")

// priorityNames is indexed by the Priority value itself.
var priorityNames = [...]string{
	PriorityNone:   "none",
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
	PriorityUrgent: "urgent",
}

// AllPriorities lists every priority in ascending order, for metrics grouping.
func AllPriorities() []Priority {
	all := make([]Priority, 0, len(priorityNames))
	for p := range priorityNames {
		all = append(all, Priority(p))
	}
	return all
}

// ParsePriority resolves a case-insensitive priority token.
func ParsePriority(s string) (Priority, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for p, name := range priorityNames {
		if name == token {
			return Priority(p), nil
		}
	}
	return PriorityNone, ErrInvalidPriority
}

// String returns the lowercase token for the priority.
func (p Priority) String() string {
	if !p.IsValid() {
		return "unknown"
	}
	return priorityNames[p]
}

// IsValid reports whether the priority is one of the declared values.
func (p Priority) IsValid() bool {
	return p >= PriorityNone && p <= PriorityUrgent
}

// Weight returns a numeric weight for sorting (higher = more important).
func (p Priority) Weight() int {
	return int(p)
}
