package address

import (
	"context"
)

// Repository is the address store contract. Fetch methods return (nil, nil)
// when no row matches.
type Repository interface {
	FetchByUUID(ctx context.Context, id UUID) (*Address, error)
	FetchByPlaceID(ctx context.Context, placeID string) (*Address, error)

	Search(ctx context.Context, filter SearchFilter) (Addresses, error)
	// FetchWithCoordinates returns every address carrying both coordinates;
	// the proximity calculator scans this bounded set linearly.
	FetchWithCoordinates(ctx context.Context) (Addresses, error)

	Create(ctx context.Context, req Address) (*Address, error)
	Update(ctx context.Context, req Address) (*Address, error)
	// Delete removes the row; a standing user reference surfaces
	// ErrAddressInUse.
	Delete(ctx context.Context, id UUID) (*Address, error)
}
