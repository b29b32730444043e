package user

import (
	domain "profile-manager-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:        model.UUID,
		IdentityKey: model.IdentityKey,
		Email:       model.Email,
		Role:        domain.Role(model.Role),

		FullName:       model.FullName,
		DocumentID:     model.DocumentID,
		DateOfBirth:    model.DateOfBirth,
		PhoneNumber:    model.PhoneNumber,
		SecondaryEmail: model.SecondaryEmail,
		AddressID:      model.AddressID,

		IsActive:         model.IsActive,
		IsDeleted:        model.IsDeleted,
		ProfileCompleted: model.ProfileCompleted,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	if model.DocumentType != nil {
		dt := domain.DocumentType(*model.DocumentType)
		u.DocumentType = &dt
	}
	if model.Gender != nil {
		g := domain.Gender(*model.Gender)
		u.Gender = &g
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}

func toEnumColumn[T ~string](value *T) *string {
	if value == nil {
		return nil
	}
	s := string(*value)
	return &s
}
