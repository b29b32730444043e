package services

import (
	"context"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"profile-manager-api/config"
	"profile-manager-api/internal/application/ports"
	domain "profile-manager-api/internal/domain/address"
	"profile-manager-api/pkg/geo"
)

type AddressService struct {
	addressRepository domain.Repository
	cfg               config.Profile
	mCounter          *prometheus.CounterVec
}

func NewAddressService(
	addressRepository domain.Repository,
	cfg config.Profile,
	mCounter *prometheus.CounterVec,
) ports.AddressService {
	return &AddressService{
		addressRepository: addressRepository,
		cfg:               cfg,
		mCounter:          mCounter,
	}
}

func (as *AddressService) FindByID(ctx context.Context, addressUUID domain.UUID) (*domain.Address, error) {
	return as.addressRepository.FetchByUUID(ctx, addressUUID)
}

func (as *AddressService) Search(ctx context.Context, filter domain.SearchFilter) (domain.Addresses, error) {
	return as.addressRepository.Search(ctx, filter)
}

// Nearby scans every geocoded address and keeps those within radiusKM of
// the center, closest first. The set is bounded, so a linear scan beats
// carrying a spatial index.
func (as *AddressService) Nearby(ctx context.Context, center geo.Point, radiusKM float64) ([]*domain.WithDistance, error) {
	candidates, err := as.addressRepository.FetchWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.WithDistance, 0, len(candidates))
	for _, a := range candidates {
		p := geo.Point{Lat: *a.Latitude, Lng: *a.Longitude}
		d := geo.Distance(center, p)
		if d <= radiusKM+geo.Tolerance {
			matches = append(matches, &domain.WithDistance{Address: a, DistanceKM: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKM != matches[j].DistanceKM {
			return matches[i].DistanceKM < matches[j].DistanceKM
		}
		return matches[i].Address.UUID.String() < matches[j].Address.UUID.String()
	})

	return matches, nil
}

func (as *AddressService) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	// A known place_id means the address is already on file; creating is
	// idempotent there.
	if a.PlaceID != nil {
		existing, err := as.addressRepository.FetchByPlaceID(ctx, *a.PlaceID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	if a.Country == "" {
		a.Country = as.cfg.DefaultCountry
	}

	aRet, err := as.addressRepository.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues("address_created_total").Inc()

	return aRet, nil
}

func (as *AddressService) Update(ctx context.Context, addressUUID domain.UUID, in domain.Update) (*domain.Address, error) {
	a, err := as.addressRepository.FetchByUUID(ctx, addressUUID)
	if err != nil || a == nil {
		return nil, err
	}

	if in.Street != nil {
		a.Street = *in.Street
	}
	if in.Number != nil {
		a.Number = *in.Number
	}
	if in.Complement != nil {
		a.Complement = in.Complement
	}
	if in.Neighborhood != nil {
		a.Neighborhood = *in.Neighborhood
	}
	if in.City != nil {
		a.City = *in.City
	}
	if in.State != nil {
		a.State = *in.State
	}
	if in.PostalCode != nil {
		a.PostalCode = *in.PostalCode
	}
	if in.Country != nil {
		a.Country = *in.Country
	}
	if in.Latitude != nil {
		a.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		a.Longitude = in.Longitude
	}
	if in.PlaceID != nil {
		a.PlaceID = in.PlaceID
	}

	aRet, err := as.addressRepository.Update(ctx, *a)
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues("address_updated_total").Inc()

	return aRet, nil
}

func (as *AddressService) Delete(ctx context.Context, addressUUID domain.UUID) error {
	a, err := as.addressRepository.Delete(ctx, addressUUID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrAddressNotFound
	}

	as.mCounter.WithLabelValues("address_deleted_total").Inc()

	return nil
}
