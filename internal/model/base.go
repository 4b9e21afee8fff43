package model

import "github.com/google/uuid"

// newID returns a time-ordered identifier, so ordering by id agrees with
// insertion order when timestamps tie.
func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID  uuid.UUID
	IsAdmin bool
}
