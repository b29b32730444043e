package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "profile-manager-api/internal/domain/user"
	"profile-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

// conflictField maps a unique-constraint name onto the offending payload
// field, so a commit-time race reports exactly like the pre-check.
func conflictField(constraint string) string {
	switch constraint {
	case "users_identity_key_key":
		return "identity_key"
	case "users_email_key":
		return "email"
	case "users_document_id_key":
		return "document_id"
	case "users_phone_number_key":
		return "phone_number"
	case "users_secondary_email_key":
		return "secondary_email"
	}
	return ""
}

func translateConflict(err error) error {
	if constraint, ok := postgres.UniqueViolation(err); ok {
		if field := conflictField(constraint); field != "" {
			return &domain.ConflictError{Field: field}
		}
	}
	return err
}

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.UUID,
		&u.IdentityKey,
		&u.Email,
		&u.Role,

		&u.FullName,
		&u.DocumentType,
		&u.DocumentID,
		&u.DateOfBirth,
		&u.Gender,
		&u.PhoneNumber,
		&u.SecondaryEmail,
		&u.AddressID,

		&u.IsActive,
		&u.IsDeleted,
		&u.ProfileCompleted,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u, err := r.scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchByUUID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByUUID, id)
}

func (r *Repository) FetchByIdentityKey(ctx context.Context, identityKey string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByIdentityKey, identityKey)
}

func (r *Repository) FetchByDocumentID(ctx context.Context, documentID string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByDocumentID, documentID)
}

func (r *Repository) FetchByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByPhone, phone)
}

func (r *Repository) FetchBySecondaryEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserBySecondaryEmail, email)
}

func (r *Repository) Search(ctx context.Context, filter domain.SearchFilter) (domain.Users, int, error) {
	rowsSQL, countSQL, rowsArgs, countArgs := buildSearchQueries(filter)

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, rowsSQL, rowsArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.UUID,
			&u.IdentityKey,
			&u.Email,
			&u.Role,

			&u.FullName,
			&u.DocumentType,
			&u.DocumentID,
			&u.DateOfBirth,
			&u.Gender,
			&u.PhoneNumber,
			&u.SecondaryEmail,
			&u.AddressID,

			&u.IsActive,
			&u.IsDeleted,
			&u.ProfileCompleted,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(&us), total, nil
}

func (r *Repository) Create(ctx context.Context, req domain.User) (*domain.User, error) {
	u, err := r.scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.IdentityKey, req.Email, string(req.Role),
	))
	if err != nil {
		return nil, translateConflict(err)
	}

	return u, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, req domain.User) (*domain.User, error) {
	u, err := r.scanUser(r.db.QueryRow(
		ctx,
		UpdateUserProfileByUUID,
		req.UUID,
		req.FullName,
		toEnumColumn(req.DocumentType),
		req.DocumentID,
		req.DateOfBirth,
		toEnumColumn(req.Gender),
		req.PhoneNumber,
		req.SecondaryEmail,
		req.AddressID,
		req.ProfileCompleted,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateConflict(err)
	}

	return u, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id domain.UUID, status domain.Status) (*domain.User, error) {
	isActive, isDeleted := status.Flags()

	u, err := r.scanUser(r.db.QueryRow(ctx, UpdateUserStatusByUUID, id, isActive, isDeleted))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) HardDelete(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := r.scanUser(r.db.QueryRow(ctx, HardDeleteUserByUUID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}
