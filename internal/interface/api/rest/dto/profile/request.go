package profile

type (
	// RegisterRequest bootstraps a bare user record; the profile comes later.
	RegisterRequest struct {
		IdentityKey string  `json:"identity_key"`
		Email       string  `json:"email"`
		Role        *string `json:"role"`
	}

	// CreateRequest carries a full profile payload. The five completion
	// fields are mandatory here; secondary_email and address_id are not.
	CreateRequest struct {
		FullName       string  `json:"full_name"`
		DocumentType   string  `json:"document_type"`
		DocumentID     string  `json:"document_id"`
		DateOfBirth    string  `json:"date_of_birth"`
		Gender         string  `json:"gender"`
		PhoneNumber    string  `json:"phone_number"`
		SecondaryEmail *string `json:"secondary_email"`
		AddressID      *string `json:"address_id"`
	}

	// UpdateRequest carries a partial profile update; absent fields are
	// untouched. An empty address_id detaches the address reference.
	UpdateRequest struct {
		FullName       *string `json:"full_name"`
		DocumentType   *string `json:"document_type"`
		DocumentID     *string `json:"document_id"`
		DateOfBirth    *string `json:"date_of_birth"`
		Gender         *string `json:"gender"`
		PhoneNumber    *string `json:"phone_number"`
		SecondaryEmail *string `json:"secondary_email"`
		AddressID      *string `json:"address_id"`
	}
)
