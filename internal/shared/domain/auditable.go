package domain

// AuditableEntity extends BaseEntity with actor audit stamps. Actor
// identifiers are opaque strings supplied by the application layer; the
// storage layer never interprets them.
type AuditableEntity struct {
	BaseEntity
	createdBy string
	updatedBy string
}

func (e AuditableEntity) CreatedBy() string { return e.createdBy }
func (e AuditableEntity) UpdatedBy() string { return e.updatedBy }

// StampCreated records the creating actor. Set once at creation time.
func (e *AuditableEntity) StampCreated(actor string) {
	e.createdBy = actor
	e.updatedBy = actor
}

// StampUpdated records the actor of a mutation.
func (e *AuditableEntity) StampUpdated(actor string) {
	e.updatedBy = actor
}
