package domain

// HasId is the capability shared by identifier-keyed elements: a stable
// identifier, distinct from value equality, used for identity-based lookup.
type HasId[ID comparable] interface {
	GetId() ID
}

// WithId is an embeddable identifier field for element types.
//
//	type User struct {
//		domain.WithId[string]
//		Name string
//	}
type WithId[ID comparable] struct {
	Id ID
}

// GetId returns the element's identifier.
func (w WithId[ID]) GetId() ID { return w.Id }

// Element is the constraint for hash-set membership of identifiable values:
// the element itself must be usable as a map key.
type Element[ID comparable] interface {
	comparable
	HasId[ID]
}
