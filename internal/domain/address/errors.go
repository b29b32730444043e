package address

import (
	"errors"
	"fmt"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	// ErrAddressInUse rejects deletion of an address still referenced by a
	// live user; the caller must detach the reference first.
	ErrAddressInUse = errors.New("address is referenced by a user")
)

// ConflictError reports a uniqueness violation on the named field
// (currently only place_id).
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already in use", e.Field)
}
