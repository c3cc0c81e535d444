package domain

// TaskFilter selects tasks by field equality. A nil field means no
// constraint on that field; the zero filter matches every task.
type TaskFilter struct {
	Status   *Status
	Priority *Priority
}

// Match reports whether the task satisfies every constrained field.
func (f TaskFilter) Match(t *Task) bool {
	if f.Status != nil && t.Status() != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority() != *f.Priority {
		return false
	}
	return true
}

// IsEmpty reports whether the filter constrains nothing.
func (f TaskFilter) IsEmpty() bool {
	return f.Status == nil && f.Priority == nil
}
