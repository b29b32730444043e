package address

import (
	domain "profile-manager-api/internal/domain/address"
)

func fromDBModel(model *Address) *domain.Address {
	return &domain.Address{
		UUID: model.UUID,

		Street:       model.Street,
		Number:       model.Number,
		Complement:   model.Complement,
		Neighborhood: model.Neighborhood,
		City:         model.City,
		State:        model.State,
		PostalCode:   model.PostalCode,
		Country:      model.Country,

		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		PlaceID:   model.PlaceID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Addresses) domain.Addresses {
	as := make(domain.Addresses, len(*models))
	for idx, a := range *models {
		as[idx] = fromDBModel(a)
	}

	return as
}
