package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/nucleus/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseEntity_Provisional(t *testing.T) {
	var e domain.BaseEntity

	assert.True(t, e.IsProvisional())
	assert.Equal(t, uuid.Nil, e.ID())
	assert.Equal(t, 0, e.Version())
}

func TestBaseEntity_AssignIdentity(t *testing.T) {
	var e domain.BaseEntity
	id := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	e.AssignIdentity(id, now)

	assert.False(t, e.IsProvisional())
	assert.Equal(t, id, e.ID())
	assert.Equal(t, 1, e.Version())
	assert.Equal(t, now, e.CreatedAt())
	assert.Equal(t, now, e.UpdatedAt())
}

func TestBaseEntity_MarkUpdated(t *testing.T) {
	var e domain.BaseEntity
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e.AssignIdentity(uuid.New(), created)

	updated := created.Add(time.Hour)
	e.MarkUpdated(updated)

	assert.Equal(t, 2, e.Version())
	assert.Equal(t, created, e.CreatedAt())
	assert.Equal(t, updated, e.UpdatedAt())

	e.MarkUpdated(updated.Add(time.Hour))
	assert.Equal(t, 3, e.Version())
}

func TestBaseEntity_Touch(t *testing.T) {
	var e domain.BaseEntity
	e.AssignIdentity(uuid.New(), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	before := e.UpdatedAt()

	e.Touch()

	assert.True(t, e.UpdatedAt().After(before))
	assert.Equal(t, 1, e.Version(), "Touch must not bump the version")
}

func TestBaseEntity_Equals(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	a := domain.RehydrateBaseEntity(id, now, now, 1)
	b := domain.RehydrateBaseEntity(id, now.Add(time.Hour), now.Add(time.Hour), 7)
	c := domain.RehydrateBaseEntity(uuid.New(), now, now, 1)

	assert.True(t, a.Equals(b), "identity is the id, not the state")
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestAuditableEntity_Stamps(t *testing.T) {
	var e domain.AuditableEntity

	e.StampCreated("ada")
	require.Equal(t, "ada", e.CreatedBy())
	require.Equal(t, "ada", e.UpdatedBy())

	e.StampUpdated("grace")
	assert.Equal(t, "ada", e.CreatedBy(), "createdBy is set once")
	assert.Equal(t, "grace", e.UpdatedBy())
}
