package catalogs

import "github.com/google/uuid"

// ID is the surrogate identifier of an entry inside a store.
type ID string

// NewID returns a new time-ordered identifier.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return ID(uuid.NewString())
	}
	return ID(id.String())
}

// String returns the identifier as a string.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether no identifier has been assigned.
func (id ID) IsZero() bool {
	return id == ""
}
