package user

import (
	"context"
)

// Repository is the user store contract. Fetch methods return (nil, nil)
// when no row matches; soft-deleted rows are returned (lookups back the
// uniqueness checker and the restore path, both of which must see them) and
// callers decide visibility. Hard-deleted rows are gone.
type Repository interface {
	FetchByUUID(ctx context.Context, id UUID) (*User, error)
	FetchByIdentityKey(ctx context.Context, identityKey string) (*User, error)
	FetchByDocumentID(ctx context.Context, documentID string) (*User, error)
	FetchByPhone(ctx context.Context, phone string) (*User, error)
	FetchBySecondaryEmail(ctx context.Context, email string) (*User, error)

	// Search returns one page plus the total match count computed
	// independently of the page window.
	Search(ctx context.Context, filter SearchFilter) (Users, int, error)

	Create(ctx context.Context, req User) (*User, error)
	// UpdateProfile persists all profile fields and the derived completion
	// flag as a single atomic write.
	UpdateProfile(ctx context.Context, req User) (*User, error)
	UpdateStatus(ctx context.Context, id UUID, status Status) (*User, error)
	HardDelete(ctx context.Context, id UUID) (*User, error)
}
