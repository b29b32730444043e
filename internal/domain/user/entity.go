package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID        UUID
		IdentityKey string
		Email       string
		Role        Role

		FullName       *string
		DocumentType   *DocumentType
		DocumentID     *string
		DateOfBirth    *time.Time
		Gender         *Gender
		PhoneNumber    *string
		SecondaryEmail *string
		AddressID      *uuid.UUID

		IsActive         bool
		IsDeleted        bool
		ProfileCompleted bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

// ProfileComplete derives the completion flag: true exactly when the five
// mandatory profile fields are all populated. Callers never set the flag
// directly.
func (u *User) ProfileComplete() bool {
	return u.FullName != nil &&
		u.DocumentType != nil &&
		u.DocumentID != nil &&
		u.DateOfBirth != nil &&
		u.PhoneNumber != nil
}

// Status collapses the two persisted flags into the lifecycle enumeration.
// A row carrying both flags is treated as deleted, never as active.
func (u *User) Status() Status {
	return StatusOf(u.IsActive, u.IsDeleted)
}

// Age in full years at the given instant, nil without a date of birth.
func (u *User) Age(now time.Time) *int {
	if u.DateOfBirth == nil {
		return nil
	}
	dob := *u.DateOfBirth
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return &years
}
