package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID          uint64
		UUID        uuid.UUID
		IdentityKey string
		Email       string
		Role        string

		FullName       *string
		DocumentType   *string
		DocumentID     *string
		DateOfBirth    *time.Time
		Gender         *string
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
