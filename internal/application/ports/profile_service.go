package ports

import (
	"context"

	"profile-manager-api/internal/domain/address"
	"profile-manager-api/internal/domain/user"
)

type ProfileService interface {
	Register(ctx context.Context, identityKey, email string, role user.Role) (*user.User, error)
	FindByID(ctx context.Context, uuid user.UUID) (*user.User, *address.Address, error)
	FindByIdentityKey(ctx context.Context, identityKey string) (*user.User, error)
	Search(ctx context.Context, filter user.SearchFilter) (user.Users, int, error)

	CreateProfile(ctx context.Context, uuid user.UUID, in user.ProfileInput) (*user.User, *address.Address, error)
	UpdateProfile(ctx context.Context, uuid user.UUID, in user.ProfileUpdate) (*user.User, *address.Address, error)

	Activate(ctx context.Context, uuid user.UUID) (*user.User, error)
	Deactivate(ctx context.Context, uuid user.UUID) (*user.User, error)
	SoftDelete(ctx context.Context, uuid user.UUID) (*user.User, error)
	Restore(ctx context.Context, uuid user.UUID) (*user.User, error)
	HardDelete(ctx context.Context, uuid user.UUID) error
}
