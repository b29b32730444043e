package address

import (
	"profile-manager-api/internal/domain/address"
)

func ToResponseAddress(aDomain address.Address) Response {
	return Response{
		UUID:         aDomain.UUID,
		Street:       aDomain.Street,
		Number:       aDomain.Number,
		Complement:   aDomain.Complement,
		Neighborhood: aDomain.Neighborhood,
		City:         aDomain.City,
		State:        aDomain.State,
		PostalCode:   aDomain.PostalCode,
		Country:      aDomain.Country,
		Latitude:     aDomain.Latitude,
		Longitude:    aDomain.Longitude,
		PlaceID:      aDomain.PlaceID,
		CreatedAt:    aDomain.CreatedAt,
		UpdatedAt:    aDomain.UpdatedAt,
	}
}

func ToResponseAddresses(asDomain address.Addresses) Responses {
	rs := make(Responses, len(asDomain))
	for idx, a := range asDomain {
		rs[idx] = ToResponseAddress(*a)
	}

	return rs
}

func ToNearbyResponses(asDomain []*address.WithDistance) NearbyResponses {
	rs := make(NearbyResponses, len(asDomain))
	for idx, a := range asDomain {
		rs[idx] = NearbyResponse{
			Response:   ToResponseAddress(*a.Address),
			DistanceKM: a.DistanceKM,
		}
	}

	return rs
}

func ToDomainAddress(aRequest Request) address.Address {
	return address.Address{
		Street:       aRequest.Street,
		Number:       aRequest.Number,
		Complement:   aRequest.Complement,
		Neighborhood: aRequest.Neighborhood,
		City:         aRequest.City,
		State:        aRequest.State,
		PostalCode:   aRequest.PostalCode,
		Country:      aRequest.Country,
		Latitude:     aRequest.Latitude,
		Longitude:    aRequest.Longitude,
		PlaceID:      aRequest.PlaceID,
	}
}

func ToDomainUpdate(aRequest UpdateRequest) address.Update {
	return address.Update{
		Street:       aRequest.Street,
		Number:       aRequest.Number,
		Complement:   aRequest.Complement,
		Neighborhood: aRequest.Neighborhood,
		City:         aRequest.City,
		State:        aRequest.State,
		PostalCode:   aRequest.PostalCode,
		Country:      aRequest.Country,
		Latitude:     aRequest.Latitude,
		Longitude:    aRequest.Longitude,
		PlaceID:      aRequest.PlaceID,
	}
}
