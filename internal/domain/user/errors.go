package user

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists signals a second bootstrap attempt for an
	// identity key that already owns a profile.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrAddressReference signals an address_id that does not resolve to an
	// existing address.
	ErrAddressReference = errors.New("address_id does not resolve to an existing address")
)

// ConflictError reports a uniqueness violation on the named field. Both the
// pre-commit check and the storage constraint surface it, so callers cannot
// distinguish timing-dependent races.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already in use", e.Field)
}

// InvalidTransitionError reports a lifecycle move the state machine rejects.
type InvalidTransitionError struct {
	From   Status
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a user in state %q", e.Action, e.From)
}
