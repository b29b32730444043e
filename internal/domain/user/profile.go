package user

import (
	"time"

	"github.com/google/uuid"
)

// ProfileInput carries a full, already-validated profile create payload.
// The five completion fields are mandatory on create.
type ProfileInput struct {
	FullName       string
	DocumentType   DocumentType
	DocumentID     string
	DateOfBirth    time.Time
	Gender         Gender
	PhoneNumber    string
	SecondaryEmail *string
	AddressID      *uuid.UUID
}

// ProfileUpdate carries a partial update; nil fields are left untouched.
// Required fields can never be cleared back to null, only replaced, so
// a completed profile stays complete. DetachAddress removes the address
// reference and wins over AddressID.
type ProfileUpdate struct {
	FullName       *string
	DocumentType   *DocumentType
	DocumentID     *string
	DateOfBirth    *time.Time
	Gender         *Gender
	PhoneNumber    *string
	SecondaryEmail *string
	AddressID      *uuid.UUID
	DetachAddress  bool
}
