package address

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "profile-manager-api/internal/domain/address"
	"profile-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func translateWriteError(err error) error {
	if constraint, ok := postgres.UniqueViolation(err); ok {
		if constraint == "addresses_place_id_key" {
			return &domain.ConflictError{Field: "place_id"}
		}
	}
	if constraint, ok := postgres.ForeignKeyViolation(err); ok {
		if constraint == "users_address_id_fkey" {
			return domain.ErrAddressInUse
		}
	}
	return err
}

func (r *Repository) scanAddress(row pgx.Row) (*domain.Address, error) {
	a := new(Address)
	err := row.Scan(
		&a.ID,
		&a.UUID,

		&a.Street,
		&a.Number,
		&a.Complement,
		&a.Neighborhood,
		&a.City,
		&a.State,
		&a.PostalCode,
		&a.Country,

		&a.Latitude,
		&a.Longitude,
		&a.PlaceID,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (domain.Addresses, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var as Addresses
	for rows.Next() {
		a := new(Address)

		if err = rows.Scan(
			&a.ID,
			&a.UUID,

			&a.Street,
			&a.Number,
			&a.Complement,
			&a.Neighborhood,
			&a.City,
			&a.State,
			&a.PostalCode,
			&a.Country,

			&a.Latitude,
			&a.Longitude,
			&a.PlaceID,

			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}

		as = append(as, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&as), nil
}

func (r *Repository) FetchByUUID(ctx context.Context, id domain.UUID) (*domain.Address, error) {
	a, err := r.scanAddress(r.db.QueryRow(ctx, SelectAddressByUUID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return a, nil
}

func (r *Repository) FetchByPlaceID(ctx context.Context, placeID string) (*domain.Address, error) {
	a, err := r.scanAddress(r.db.QueryRow(ctx, SelectAddressByPlaceID, placeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return a, nil
}

func (r *Repository) Search(ctx context.Context, filter domain.SearchFilter) (domain.Addresses, error) {
	query, args := buildSearchQuery(filter)
	return r.fetchMany(ctx, query, args...)
}

func (r *Repository) FetchWithCoordinates(ctx context.Context) (domain.Addresses, error) {
	return r.fetchMany(ctx, SelectAddressesWithCoordinates)
}

func (r *Repository) Create(ctx context.Context, req domain.Address) (*domain.Address, error) {
	a, err := r.scanAddress(r.db.QueryRow(
		ctx,
		InsertAddress,
		req.Street, req.Number, req.Complement, req.Neighborhood,
		req.City, req.State, req.PostalCode, req.Country,
		req.Latitude, req.Longitude, req.PlaceID,
	))
	if err != nil {
		return nil, translateWriteError(err)
	}

	return a, nil
}

func (r *Repository) Update(ctx context.Context, req domain.Address) (*domain.Address, error) {
	a, err := r.scanAddress(r.db.QueryRow(
		ctx,
		UpdateAddressByUUID,
		req.UUID,
		req.Street, req.Number, req.Complement, req.Neighborhood,
		req.City, req.State, req.PostalCode, req.Country,
		req.Latitude, req.Longitude, req.PlaceID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateWriteError(err)
	}

	return a, nil
}

func (r *Repository) Delete(ctx context.Context, id domain.UUID) (*domain.Address, error) {
	a, err := r.scanAddress(r.db.QueryRow(ctx, DeleteAddressByUUID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateWriteError(err)
	}

	return a, nil
}
