package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"profile-manager-api/internal/application/ports"
	addressDomain "profile-manager-api/internal/domain/address"
	domain "profile-manager-api/internal/domain/user"
	"profile-manager-api/internal/infrastructure/mq"
	"profile-manager-api/internal/interface/api/rest/dto/profile"
)

type ProfileService struct {
	userRepository    domain.Repository
	addressRepository addressDomain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewProfileService(
	userRepository domain.Repository,
	addressRepository addressDomain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ProfileService {
	return &ProfileService{
		userRepository:    userRepository,
		addressRepository: addressRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (ps *ProfileService) emit(action string, u *domain.User, a *addressDomain.Address) {
	ps.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		UserID:  u.UUID.String(),
		Payload: profile.ToResponseUser(*u, a),
	}
}

func (ps *ProfileService) Register(ctx context.Context, identityKey, email string, role domain.Role) (*domain.User, error) {
	existing, err := ps.userRepository.FetchByIdentityKey(ctx, identityKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	u, err := ps.userRepository.Create(ctx, domain.User{
		IdentityKey: identityKey,
		Email:       email,
		Role:        role,
	})
	if err != nil {
		return nil, err
	}

	ps.emit(mq.ActionUserRegistered, u, nil)
	ps.mCounter.WithLabelValues("user_registered_total").Inc()

	return u, nil
}

func (ps *ProfileService) FindByID(ctx context.Context, userUUID domain.UUID) (*domain.User, *addressDomain.Address, error) {
	u, err := ps.userRepository.FetchByUUID(ctx, userUUID)
	if err != nil || u == nil {
		return nil, nil, err
	}

	a, err := ps.fetchAddress(ctx, u)
	if err != nil {
		return nil, nil, err
	}

	return u, a, nil
}

func (ps *ProfileService) FindByIdentityKey(ctx context.Context, identityKey string) (*domain.User, error) {
	return ps.userRepository.FetchByIdentityKey(ctx, identityKey)
}

func (ps *ProfileService) Search(ctx context.Context, filter domain.SearchFilter) (domain.Users, int, error) {
	return ps.userRepository.Search(ctx, filter)
}

func (ps *ProfileService) CreateProfile(ctx context.Context, userUUID domain.UUID, in domain.ProfileInput) (*domain.User, *addressDomain.Address, error) {
	u, err := ps.userRepository.FetchByUUID(ctx, userUUID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil || u.IsDeleted {
		return nil, nil, domain.ErrUserNotFound
	}

	a, err := ps.resolveAddress(ctx, in.AddressID)
	if err != nil {
		return nil, nil, err
	}

	if err = ps.checkUnique(ctx, u.UUID, &in.DocumentID, &in.PhoneNumber, in.SecondaryEmail); err != nil {
		return nil, nil, err
	}

	u.FullName = &in.FullName
	u.DocumentType = &in.DocumentType
	u.DocumentID = &in.DocumentID
	u.DateOfBirth = &in.DateOfBirth
	u.Gender = &in.Gender
	u.PhoneNumber = &in.PhoneNumber
	u.SecondaryEmail = in.SecondaryEmail
	u.AddressID = in.AddressID
	u.ProfileCompleted = u.ProfileComplete()

	uRet, err := ps.userRepository.UpdateProfile(ctx, *u)
	if err != nil {
		return nil, nil, err
	}
	if uRet == nil {
		return nil, nil, domain.ErrUserNotFound
	}

	ps.emit(mq.ActionProfileCreated, uRet, a)
	ps.mCounter.WithLabelValues("profile_created_total").Inc()

	return uRet, a, nil
}

func (ps *ProfileService) UpdateProfile(ctx context.Context, userUUID domain.UUID, in domain.ProfileUpdate) (*domain.User, *addressDomain.Address, error) {
	u, err := ps.userRepository.FetchByUUID(ctx, userUUID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil || u.IsDeleted {
		return nil, nil, domain.ErrUserNotFound
	}

	// Uniqueness is only rechecked for fields the update actually changes.
	var checkDoc, checkPhone, checkSecondary *string
	if in.DocumentID != nil && (u.DocumentID == nil || *u.DocumentID != *in.DocumentID) {
		checkDoc = in.DocumentID
	}
	if in.PhoneNumber != nil && (u.PhoneNumber == nil || *u.PhoneNumber != *in.PhoneNumber) {
		checkPhone = in.PhoneNumber
	}
	if in.SecondaryEmail != nil && (u.SecondaryEmail == nil || *u.SecondaryEmail != *in.SecondaryEmail) {
		checkSecondary = in.SecondaryEmail
	}
	if err = ps.checkUnique(ctx, u.UUID, checkDoc, checkPhone, checkSecondary); err != nil {
		return nil, nil, err
	}

	if in.FullName != nil {
		u.FullName = in.FullName
	}
	if in.DocumentType != nil {
		u.DocumentType = in.DocumentType
	}
	if in.DocumentID != nil {
		u.DocumentID = in.DocumentID
	}
	if in.DateOfBirth != nil {
		u.DateOfBirth = in.DateOfBirth
	}
	if in.Gender != nil {
		u.Gender = in.Gender
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = in.PhoneNumber
	}
	if in.SecondaryEmail != nil {
		u.SecondaryEmail = in.SecondaryEmail
	}
	switch {
	case in.DetachAddress:
		u.AddressID = nil
	case in.AddressID != nil:
		if _, err = ps.resolveAddress(ctx, in.AddressID); err != nil {
			return nil, nil, err
		}
		u.AddressID = in.AddressID
	}
	u.ProfileCompleted = u.ProfileComplete()

	uRet, err := ps.userRepository.UpdateProfile(ctx, *u)
	if err != nil {
		return nil, nil, err
	}
	if uRet == nil {
		return nil, nil, domain.ErrUserNotFound
	}

	a, err := ps.fetchAddress(ctx, uRet)
	if err != nil {
		return nil, nil, err
	}

	ps.emit(mq.ActionProfileUpdated, uRet, a)
	ps.mCounter.WithLabelValues("profile_updated_total").Inc()

	return uRet, a, nil
}

func (ps *ProfileService) Activate(ctx context.Context, userUUID domain.UUID) (*domain.User, error) {
	return ps.transition(ctx, userUUID, domain.ActionActivate, mq.ActionUserActivated, "user_activated_total")
}

func (ps *ProfileService) Deactivate(ctx context.Context, userUUID domain.UUID) (*domain.User, error) {
	return ps.transition(ctx, userUUID, domain.ActionDeactivate, mq.ActionUserDeactivated, "user_deactivated_total")
}

func (ps *ProfileService) SoftDelete(ctx context.Context, userUUID domain.UUID) (*domain.User, error) {
	return ps.transition(ctx, userUUID, domain.ActionSoftDelete, mq.ActionUserSoftDeleted, "user_soft_deleted_total")
}

func (ps *ProfileService) Restore(ctx context.Context, userUUID domain.UUID) (*domain.User, error) {
	return ps.transition(ctx, userUUID, domain.ActionRestore, mq.ActionUserRestored, "user_restored_total")
}

func (ps *ProfileService) HardDelete(ctx context.Context, userUUID domain.UUID) error {
	u, err := ps.userRepository.HardDelete(ctx, userUUID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}

	ps.emit(mq.ActionUserHardDeleted, u, nil)
	ps.mCounter.WithLabelValues("user_hard_deleted_total").Inc()

	return nil
}

func (ps *ProfileService) transition(
	ctx context.Context,
	userUUID domain.UUID,
	action domain.Action,
	event string,
	counter string,
) (*domain.User, error) {
	u, err := ps.userRepository.FetchByUUID(ctx, userUUID)
	if err != nil || u == nil {
		return nil, err
	}

	next, err := domain.Transition(u.Status(), action)
	if err != nil {
		return nil, err
	}
	if next == u.Status() {
		return u, nil
	}

	uRet, err := ps.userRepository.UpdateStatus(ctx, userUUID, next)
	if err != nil || uRet == nil {
		return nil, err
	}

	ps.emit(event, uRet, nil)
	ps.mCounter.WithLabelValues(counter).Inc()

	return uRet, nil
}

// checkUnique enforces document_id, phone_number and secondary_email
// uniqueness before the write. Soft-deleted holders still count; only the
// user being updated may already hold the value. The storage constraints
// surface the same ConflictError on a lost race.
func (ps *ProfileService) checkUnique(ctx context.Context, self domain.UUID, documentID, phone, secondaryEmail *string) error {
	if documentID != nil {
		holder, err := ps.userRepository.FetchByDocumentID(ctx, *documentID)
		if err != nil {
			return err
		}
		if holder != nil && holder.UUID != self {
			return &domain.ConflictError{Field: "document_id"}
		}
	}
	if phone != nil {
		holder, err := ps.userRepository.FetchByPhone(ctx, *phone)
		if err != nil {
			return err
		}
		if holder != nil && holder.UUID != self {
			return &domain.ConflictError{Field: "phone_number"}
		}
	}
	if secondaryEmail != nil {
		holder, err := ps.userRepository.FetchBySecondaryEmail(ctx, *secondaryEmail)
		if err != nil {
			return err
		}
		if holder != nil && holder.UUID != self {
			return &domain.ConflictError{Field: "secondary_email"}
		}
	}

	return nil
}

func (ps *ProfileService) resolveAddress(ctx context.Context, id *uuid.UUID) (*addressDomain.Address, error) {
	if id == nil {
		return nil, nil
	}
	a, err := ps.addressRepository.FetchByUUID(ctx, *id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAddressReference
	}

	return a, nil
}

func (ps *ProfileService) fetchAddress(ctx context.Context, u *domain.User) (*addressDomain.Address, error) {
	if u.AddressID == nil {
		return nil, nil
	}

	return ps.addressRepository.FetchByUUID(ctx, *u.AddressID)
}
