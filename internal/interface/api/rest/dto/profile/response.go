package profile

import (
	"time"

	"github.com/google/uuid"

	"profile-manager-api/internal/interface/api/rest/dto/address"
)

type (
	Response struct {
		UUID        uuid.UUID `json:"uuid"`
		IdentityKey string    `json:"identity_key"`
		Email       string    `json:"email"`
		Role        string    `json:"role"`

		FullName       *string `json:"full_name"`
		DocumentType   *string `json:"document_type"`
		DocumentID     *string `json:"document_id"`
		DateOfBirth    *string `json:"date_of_birth"`
		Gender         *string `json:"gender"`
		PhoneNumber    *string `json:"phone_number"`
		SecondaryEmail *string `json:"secondary_email"`

		Address *address.Response `json:"address"`

		Status           string `json:"status"`
		IsActive         bool   `json:"is_active"`
		IsDeleted        bool   `json:"is_deleted"`
		ProfileCompleted bool   `json:"profile_completed"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Responses    []Response
	ResponseData struct {
		Data   Responses `json:"data"`
		Total  int       `json:"total"`
		Offset int       `json:"offset"`
		Limit  int       `json:"limit"`
	}
)
