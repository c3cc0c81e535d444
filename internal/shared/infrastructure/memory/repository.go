// Package memory provides a generic, thread-safe in-memory repository for
// versioned domain entities. Every value crossing the repository boundary is
// a clone, so callers can never bypass the version and timestamp invariants
// by mutating a returned entity.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/felixgeelhaar/nucleus/internal/shared/domain"
	"github.com/google/uuid"
)

// Storable is the capability set an entity must expose to be stored:
// identity and version accessors, the metadata hooks the repository stamps
// on create and update, and a deep clone of its concrete type.
type Storable[T any] interface {
	domain.Entity
	Base() *domain.BaseEntity
	Clone() T
}

// Repository is an in-memory keyed store preserving insertion order.
// Mutations serialize behind a write lock so the read-modify-write on the
// version counter stays atomic; reads share a read lock.
type Repository[T Storable[T]] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	order []uuid.UUID
	clock func() time.Time
	newID func() uuid.UUID
}

// Option configures a Repository.
type Option[T Storable[T]] func(*Repository[T])

// WithClock overrides the time source. Used by tests.
func WithClock[T Storable[T]](clock func() time.Time) Option[T] {
	return func(r *Repository[T]) { r.clock = clock }
}

// WithIDSource overrides the id generator. Used by tests.
func WithIDSource[T Storable[T]](newID func() uuid.UUID) Option[T] {
	return func(r *Repository[T]) { r.newID = newID }
}

// NewRepository creates an empty repository.
func NewRepository[T Storable[T]](opts ...Option[T]) *Repository[T] {
	r := &Repository[T]{
		items: make(map[uuid.UUID]T),
		clock: func() time.Time { return time.Now().UTC() },
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create assigns a fresh identity to the entity, sets version 1 and both
// timestamps to now, and stores it. It never fails; validation belongs to
// the caller.
func (r *Repository[T]) Create(_ context.Context, entity T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for {
		if _, exists := r.items[id]; !exists {
			break
		}
		id = r.newID()
	}

	stored := entity.Clone()
	stored.Base().AssignIdentity(id, r.clock())
	r.items[id] = stored
	r.order = append(r.order, id)

	return stored.Clone()
}

// FindByID returns a clone of the entity, or false when the id is unknown.
// Absence is not an error condition.
func (r *Repository[T]) FindByID(_ context.Context, id uuid.UUID) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return stored.Clone(), true
}

// FindAll returns clones of all entities in insertion order.
func (r *Repository[T]) FindAll(ctx context.Context) []T {
	return r.FindWhere(ctx, nil)
}

// FindWhere returns clones of the entities matching the predicate, in
// insertion order. A nil predicate matches everything.
func (r *Repository[T]) FindWhere(_ context.Context, pred func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		stored := r.items[id]
		if pred != nil && !pred(stored) {
			continue
		}
		out = append(out, stored.Clone())
	}
	return out
}

// Update applies mutate to a clone of the stored entity, bumps the version
// by exactly one, refreshes updatedAt, and stores the new snapshot. It fails
// with a not-found error when the id is unknown and leaves the repository
// untouched when mutate returns an error.
func (r *Repository[T]) Update(_ context.Context, id uuid.UUID, mutate func(T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	stored, ok := r.items[id]
	if !ok {
		return zero, domain.NewNotFoundError("entity %s not found", id)
	}

	next := stored.Clone()
	if mutate != nil {
		if err := mutate(next); err != nil {
			return zero, err
		}
	}
	next.Base().MarkUpdated(r.clock())
	r.items[id] = next

	return next.Clone(), nil
}

// Delete removes the entity if present and reports whether a removal
// occurred. Deleting an absent id is not an error.
func (r *Repository[T]) Delete(_ context.Context, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Count returns the number of stored entities.
func (r *Repository[T]) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
