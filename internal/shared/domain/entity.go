package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity represents a domain entity with identity and a versioned lifecycle.
type Entity interface {
	ID() uuid.UUID
	CreatedAt() time.Time
	UpdatedAt() time.Time
	Version() int
	Equals(other Entity) bool
}

// BaseEntity provides common entity functionality.
//
// Identity, timestamps and version are assigned by the repository on create;
// a zero BaseEntity is a provisional entity that has not been stored yet.
type BaseEntity struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
	version   int
}

// RehydrateBaseEntity recreates an entity from persisted state.
func RehydrateBaseEntity(id uuid.UUID, createdAt, updatedAt time.Time, version int) BaseEntity {
	return BaseEntity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
	}
}

func (e BaseEntity) ID() uuid.UUID        { return e.id }
func (e BaseEntity) CreatedAt() time.Time { return e.createdAt }
func (e BaseEntity) UpdatedAt() time.Time { return e.updatedAt }
func (e BaseEntity) Version() int         { return e.version }

// IsProvisional reports whether the entity has been assigned an identity yet.
func (e BaseEntity) IsProvisional() bool {
	return e.id == uuid.Nil
}

// Touch updates the updatedAt timestamp.
func (e *BaseEntity) Touch() {
	e.updatedAt = time.Now().UTC()
}

// AssignIdentity stamps a freshly created entity with its identity, creation
// timestamps and initial version. Called by the repository on create, never
// by domain code.
func (e *BaseEntity) AssignIdentity(id uuid.UUID, now time.Time) {
	e.id = id
	e.createdAt = now
	e.updatedAt = now
	e.version = 1
}

// MarkUpdated bumps the version and refreshes the updatedAt timestamp.
// Called by the repository on every successful update.
func (e *BaseEntity) MarkUpdated(now time.Time) {
	e.version++
	e.updatedAt = now
}

// Base exposes the embedded metadata to the storage layer.
func (e *BaseEntity) Base() *BaseEntity {
	return e
}

// Equals checks if two entities have the same identity.
func (e BaseEntity) Equals(other Entity) bool {
	if other == nil {
		return false
	}
	return e.id == other.ID()
}
