package profile

import (
	addressDomain "profile-manager-api/internal/domain/address"
	"profile-manager-api/internal/domain/user"
	addressDTO "profile-manager-api/internal/interface/api/rest/dto/address"
)

const dateLayout = "2006-01-02"

func ToResponseUser(uDomain user.User, aDomain *addressDomain.Address) Response {
	r := Response{
		UUID:        uDomain.UUID,
		IdentityKey: uDomain.IdentityKey,
		Email:       uDomain.Email,
		Role:        uDomain.Role.String(),

		FullName:       uDomain.FullName,
		DocumentID:     uDomain.DocumentID,
		PhoneNumber:    uDomain.PhoneNumber,
		SecondaryEmail: uDomain.SecondaryEmail,

		Status:           uDomain.Status().String(),
		IsActive:         uDomain.IsActive,
		IsDeleted:        uDomain.IsDeleted,
		ProfileCompleted: uDomain.ProfileCompleted,

		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
	}

	if uDomain.DocumentType != nil {
		dt := uDomain.DocumentType.String()
		r.DocumentType = &dt
	}
	if uDomain.Gender != nil {
		g := uDomain.Gender.String()
		r.Gender = &g
	}
	if uDomain.DateOfBirth != nil {
		dob := uDomain.DateOfBirth.Format(dateLayout)
		r.DateOfBirth = &dob
	}
	if aDomain != nil {
		a := addressDTO.ToResponseAddress(*aDomain)
		r.Address = &a
	}

	return r
}

func ToResponseUsers(usDomain user.Users) Responses {
	rs := make(Responses, len(usDomain))
	for idx, u := range usDomain {
		rs[idx] = ToResponseUser(*u, nil)
	}

	return rs
}
