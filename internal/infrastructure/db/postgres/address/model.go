package address

import (
	"time"

	"github.com/google/uuid"
)

type (
	Address struct {
		ID   uint64
		UUID uuid.UUID

		Street       string
		Number       string
		Complement   *string
		Neighborhood string
		City         string
		State        string
		PostalCode   string
		Country      string

		Latitude  *float64
		Longitude *float64
		PlaceID   *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Addresses []*Address
)
