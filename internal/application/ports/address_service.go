package ports

import (
	"context"

	"profile-manager-api/internal/domain/address"
	"profile-manager-api/pkg/geo"
)

type AddressService interface {
	FindByID(ctx context.Context, uuid address.UUID) (*address.Address, error)
	Search(ctx context.Context, filter address.SearchFilter) (address.Addresses, error)
	Nearby(ctx context.Context, center geo.Point, radiusKM float64) ([]*address.WithDistance, error)

	Create(ctx context.Context, a address.Address) (*address.Address, error)
	Update(ctx context.Context, uuid address.UUID, in address.Update) (*address.Address, error)
	Delete(ctx context.Context, uuid address.UUID) error
}
