package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-manager-api/internal/application/ports"
	addressDomain "profile-manager-api/internal/domain/address"
	domain "profile-manager-api/internal/domain/user"
	"profile-manager-api/internal/infrastructure/mq"
)

type FakeUserRepo struct {
	FetchByUUIDFunc           func(ctx context.Context, id domain.UUID) (*domain.User, error)
	FetchByIdentityKeyFunc    func(ctx context.Context, identityKey string) (*domain.User, error)
	FetchByDocumentIDFunc     func(ctx context.Context, documentID string) (*domain.User, error)
	FetchByPhoneFunc          func(ctx context.Context, phone string) (*domain.User, error)
	FetchBySecondaryEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	SearchFunc                func(ctx context.Context, filter domain.SearchFilter) (domain.Users, int, error)
	CreateFunc                func(ctx context.Context, req domain.User) (*domain.User, error)
	UpdateProfileFunc         func(ctx context.Context, req domain.User) (*domain.User, error)
	UpdateStatusFunc          func(ctx context.Context, id domain.UUID, status domain.Status) (*domain.User, error)
	HardDeleteFunc            func(ctx context.Context, id domain.UUID) (*domain.User, error)
}

func (f *FakeUserRepo) FetchByUUID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.FetchByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByUUIDFunc(ctx, id)
}
func (f *FakeUserRepo) FetchByIdentityKey(ctx context.Context, identityKey string) (*domain.User, error) {
	if f.FetchByIdentityKeyFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByIdentityKeyFunc(ctx, identityKey)
}
func (f *FakeUserRepo) FetchByDocumentID(ctx context.Context, documentID string) (*domain.User, error) {
	if f.FetchByDocumentIDFunc == nil {
		return nil, nil
	}
	return f.FetchByDocumentIDFunc(ctx, documentID)
}
func (f *FakeUserRepo) FetchByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if f.FetchByPhoneFunc == nil {
		return nil, nil
	}
	return f.FetchByPhoneFunc(ctx, phone)
}
func (f *FakeUserRepo) FetchBySecondaryEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FetchBySecondaryEmailFunc == nil {
		return nil, nil
	}
	return f.FetchBySecondaryEmailFunc(ctx, email)
}
func (f *FakeUserRepo) Search(ctx context.Context, filter domain.SearchFilter) (domain.Users, int, error) {
	if f.SearchFunc == nil {
		return nil, 0, errors.New("not used")
	}
	return f.SearchFunc(ctx, filter)
}
func (f *FakeUserRepo) Create(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeUserRepo) UpdateProfile(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.UpdateProfileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateProfileFunc(ctx, req)
}
func (f *FakeUserRepo) UpdateStatus(ctx context.Context, id domain.UUID, status domain.Status) (*domain.User, error) {
	if f.UpdateStatusFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateStatusFunc(ctx, id, status)
}
func (f *FakeUserRepo) HardDelete(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.HardDeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.HardDeleteFunc(ctx, id)
}

type FakeAddressRepo struct {
	FetchByUUIDFunc          func(ctx context.Context, id addressDomain.UUID) (*addressDomain.Address, error)
	FetchByPlaceIDFunc       func(ctx context.Context, placeID string) (*addressDomain.Address, error)
	SearchFunc               func(ctx context.Context, filter addressDomain.SearchFilter) (addressDomain.Addresses, error)
	FetchWithCoordinatesFunc func(ctx context.Context) (addressDomain.Addresses, error)
	CreateFunc               func(ctx context.Context, req addressDomain.Address) (*addressDomain.Address, error)
	UpdateFunc               func(ctx context.Context, req addressDomain.Address) (*addressDomain.Address, error)
	DeleteFunc               func(ctx context.Context, id addressDomain.UUID) (*addressDomain.Address, error)
}

func (f *FakeAddressRepo) FetchByUUID(ctx context.Context, id addressDomain.UUID) (*addressDomain.Address, error) {
	if f.FetchByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByUUIDFunc(ctx, id)
}
func (f *FakeAddressRepo) FetchByPlaceID(ctx context.Context, placeID string) (*addressDomain.Address, error) {
	if f.FetchByPlaceIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByPlaceIDFunc(ctx, placeID)
}
func (f *FakeAddressRepo) Search(ctx context.Context, filter addressDomain.SearchFilter) (addressDomain.Addresses, error) {
	if f.SearchFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SearchFunc(ctx, filter)
}
func (f *FakeAddressRepo) FetchWithCoordinates(ctx context.Context) (addressDomain.Addresses, error) {
	if f.FetchWithCoordinatesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchWithCoordinatesFunc(ctx)
}
func (f *FakeAddressRepo) Create(ctx context.Context, req addressDomain.Address) (*addressDomain.Address, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeAddressRepo) Update(ctx context.Context, req addressDomain.Address) (*addressDomain.Address, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, req)
}
func (f *FakeAddressRepo) Delete(ctx context.Context, id addressDomain.UUID) (*addressDomain.Address, error) {
	if f.DeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}

type FakeRabbitMQ struct {
	in chan mq.Event
}

func NewFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{in: make(chan mq.Event, 16)}
}

func (f *FakeRabbitMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeRabbitMQ) Init() error                                   { return nil }
func (f *FakeRabbitMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection                  { return nil }

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

func newProfileService(userRepo domain.Repository, addrRepo addressDomain.Repository, rmq *FakeRabbitMQ) ports.ProfileService {
	return NewProfileService(userRepo, addrRepo, rmq, testCounter())
}

func strPtr(s string) *string { return &s }

func bareUser(id domain.UUID) *domain.User {
	return &domain.User{
		UUID:        id,
		IdentityKey: "idp|abc",
		Email:       "maria@example.com",
		Role:        domain.RoleClient,
		IsActive:    true,
	}
}

func validProfileInput() domain.ProfileInput {
	return domain.ProfileInput{
		FullName:     "Maria Silva",
		DocumentType: domain.DocumentTypePassport,
		DocumentID:   "AB123456",
		DateOfBirth:  time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:       domain.GenderFemale,
		PhoneNumber:  "+5511912345678",
	}
}

func TestProfileService_Register(t *testing.T) {
	t.Run("rejects a second bootstrap for the same identity key", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByIdentityKeyFunc: func(ctx context.Context, identityKey string) (*domain.User, error) {
				return bareUser(uuid.New()), nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		u, err := svc.Register(context.Background(), "idp|abc", "maria@example.com", domain.RoleClient)
		assert.Nil(t, u)
		require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})

	t.Run("creates the record and emits an event", func(t *testing.T) {
		id := uuid.New()
		repo := &FakeUserRepo{
			FetchByIdentityKeyFunc: func(ctx context.Context, identityKey string) (*domain.User, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				assert.Equal(t, "idp|abc", req.IdentityKey)
				return bareUser(id), nil
			},
		}
		rmq := NewFakeRabbitMQ()
		svc := newProfileService(repo, &FakeAddressRepo{}, rmq)

		u, err := svc.Register(context.Background(), "idp|abc", "maria@example.com", domain.RoleClient)
		require.NoError(t, err)
		require.NotNil(t, u)

		e := <-rmq.GetInputChan()
		assert.Equal(t, mq.ActionUserRegistered, e.Action)
		assert.Equal(t, id.String(), e.UserID)
	})
}

func TestProfileService_CreateProfile(t *testing.T) {
	id := uuid.New()

	t.Run("not found when the user is soft deleted", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				u := bareUser(uid)
				u.IsActive = false
				u.IsDeleted = true
				return u, nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		_, _, err := svc.CreateProfile(context.Background(), id, validProfileInput())
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("dangling address reference is rejected", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return bareUser(uid), nil
			},
		}
		addrRepo := &FakeAddressRepo{
			FetchByUUIDFunc: func(ctx context.Context, aid addressDomain.UUID) (*addressDomain.Address, error) {
				return nil, nil
			},
		}
		svc := newProfileService(repo, addrRepo, NewFakeRabbitMQ())

		in := validProfileInput()
		missing := uuid.New()
		in.AddressID = &missing

		_, _, err := svc.CreateProfile(context.Background(), id, in)
		require.ErrorIs(t, err, domain.ErrAddressReference)
	})

	t.Run("document held by another user conflicts", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return bareUser(uid), nil
			},
			FetchByDocumentIDFunc: func(ctx context.Context, documentID string) (*domain.User, error) {
				return bareUser(uuid.New()), nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		_, _, err := svc.CreateProfile(context.Background(), id, validProfileInput())
		require.Error(t, err)

		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "document_id", conflict.Field)
	})

	t.Run("soft-deleted holder still blocks the value", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return bareUser(uid), nil
			},
			FetchByPhoneFunc: func(ctx context.Context, phone string) (*domain.User, error) {
				holder := bareUser(uuid.New())
				holder.IsActive = false
				holder.IsDeleted = true
				return holder, nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		_, _, err := svc.CreateProfile(context.Background(), id, validProfileInput())
		require.Error(t, err)

		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "phone_number", conflict.Field)
	})

	t.Run("derives the completion flag and emits profile.created", func(t *testing.T) {
		var written domain.User
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return bareUser(uid), nil
			},
			UpdateProfileFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				written = req
				return &req, nil
			},
		}
		rmq := NewFakeRabbitMQ()
		svc := newProfileService(repo, &FakeAddressRepo{}, rmq)

		u, a, err := svc.CreateProfile(context.Background(), id, validProfileInput())
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Nil(t, a)
		assert.True(t, written.ProfileCompleted)

		e := <-rmq.GetInputChan()
		assert.Equal(t, mq.ActionProfileCreated, e.Action)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	id := uuid.New()

	completedUser := func(uid domain.UUID) *domain.User {
		u := bareUser(uid)
		dt := domain.DocumentTypePassport
		g := domain.GenderFemale
		dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
		u.FullName = strPtr("Maria Silva")
		u.DocumentType = &dt
		u.DocumentID = strPtr("AB123456")
		u.DateOfBirth = &dob
		u.Gender = &g
		u.PhoneNumber = strPtr("+5511912345678")
		u.ProfileCompleted = true
		return u
	}

	t.Run("unchanged unique fields skip the lookup", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return completedUser(uid), nil
			},
			FetchByDocumentIDFunc: func(ctx context.Context, documentID string) (*domain.User, error) {
				t.Fatal("uniqueness lookup must not run for an unchanged value")
				return nil, nil
			},
			UpdateProfileFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				return &req, nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		_, _, err := svc.UpdateProfile(context.Background(), id, domain.ProfileUpdate{
			DocumentID: strPtr("AB123456"),
		})
		require.NoError(t, err)
	})

	t.Run("detach wins over a supplied address id", func(t *testing.T) {
		var written domain.User
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				u := completedUser(uid)
				aid := uuid.New()
				u.AddressID = &aid
				return u, nil
			},
			UpdateProfileFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				written = req
				return &req, nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		other := uuid.New()
		_, _, err := svc.UpdateProfile(context.Background(), id, domain.ProfileUpdate{
			DetachAddress: true,
			AddressID:     &other,
		})
		require.NoError(t, err)
		assert.Nil(t, written.AddressID)
	})

	t.Run("completion stays true after a partial update", func(t *testing.T) {
		var written domain.User
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return completedUser(uid), nil
			},
			UpdateProfileFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				written = req
				return &req, nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		_, _, err := svc.UpdateProfile(context.Background(), id, domain.ProfileUpdate{
			FullName: strPtr("Maria S. Oliveira"),
		})
		require.NoError(t, err)
		assert.True(t, written.ProfileCompleted)
		require.NotNil(t, written.FullName)
		assert.Equal(t, "Maria S. Oliveira", *written.FullName)
	})
}

func TestProfileService_Lifecycle(t *testing.T) {
	id := uuid.New()

	t.Run("soft delete forces both flags", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return bareUser(uid), nil
			},
			UpdateStatusFunc: func(ctx context.Context, uid domain.UUID, status domain.Status) (*domain.User, error) {
				assert.Equal(t, domain.StatusDeleted, status)
				u := bareUser(uid)
				u.IsActive = false
				u.IsDeleted = true
				return u, nil
			},
		}
		rmq := NewFakeRabbitMQ()
		svc := newProfileService(repo, &FakeAddressRepo{}, rmq)

		u, err := svc.SoftDelete(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.StatusDeleted, u.Status())

		e := <-rmq.GetInputChan()
		assert.Equal(t, mq.ActionUserSoftDeleted, e.Action)
	})

	t.Run("activate on active is a no-op without a write", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return bareUser(uid), nil
			},
			UpdateStatusFunc: func(ctx context.Context, uid domain.UUID, status domain.Status) (*domain.User, error) {
				t.Fatal("no status write expected")
				return nil, nil
			},
		}
		rmq := NewFakeRabbitMQ()
		svc := newProfileService(repo, &FakeAddressRepo{}, rmq)

		u, err := svc.Activate(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Len(t, rmq.GetInputChan(), 0)
	})

	t.Run("restore of a live user is rejected", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return bareUser(uid), nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		_, err := svc.Restore(context.Background(), id)
		require.Error(t, err)

		var invalid *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, domain.StatusActive, invalid.From)
		assert.Equal(t, domain.ActionRestore, invalid.Action)
	})

	t.Run("restore lands on active", func(t *testing.T) {
		repo := &FakeUserRepo{
			FetchByUUIDFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				u := bareUser(uid)
				u.IsActive = false
				u.IsDeleted = true
				return u, nil
			},
			UpdateStatusFunc: func(ctx context.Context, uid domain.UUID, status domain.Status) (*domain.User, error) {
				assert.Equal(t, domain.StatusActive, status)
				return bareUser(uid), nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		u, err := svc.Restore(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.StatusActive, u.Status())
	})
}

func TestProfileService_HardDelete(t *testing.T) {
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		repo := &FakeUserRepo{
			HardDeleteFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return nil, nil
			},
		}
		svc := newProfileService(repo, &FakeAddressRepo{}, NewFakeRabbitMQ())

		err := svc.HardDelete(context.Background(), id)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("emits the terminal event", func(t *testing.T) {
		repo := &FakeUserRepo{
			HardDeleteFunc: func(ctx context.Context, uid domain.UUID) (*domain.User, error) {
				return bareUser(uid), nil
			},
		}
		rmq := NewFakeRabbitMQ()
		svc := newProfileService(repo, &FakeAddressRepo{}, rmq)

		require.NoError(t, svc.HardDelete(context.Background(), id))

		e := <-rmq.GetInputChan()
		assert.Equal(t, mq.ActionUserHardDeleted, e.Action)
	})
}
