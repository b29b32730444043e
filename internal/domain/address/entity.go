package address

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	Address struct {
		UUID UUID

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

// HasCoordinates reports whether both latitude and longitude are present.
// The pair is jointly present or absent by validation.
func (a *Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// WithDistance pairs an address with its great-circle distance from a query
// center, in kilometers.
type WithDistance struct {
	Address    *Address
	DistanceKM float64
}

// Update carries a partial address update; nil fields are left untouched.
type Update struct {
	Street       *string
	Number       *string
	Complement   *string
	Neighborhood *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string
	Latitude     *float64
	Longitude    *float64
	PlaceID      *string
}

// SearchFilter composes address listing predicates with logical AND.
// Zero values mean "predicate absent".
type SearchFilter struct {
	// Text is matched case-insensitively against street, neighborhood and
	// city.
	Text string

	City       string
	State      string
	PostalCode string
	Country    string
}
