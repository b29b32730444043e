package address

import (
	"time"

	"github.com/google/uuid"
)

type (
	Response struct {
		UUID         uuid.UUID `json:"uuid"`
		Street       string    `json:"street"`
		Number       string    `json:"number"`
		Complement   *string   `json:"complement"`
		Neighborhood string    `json:"neighborhood"`
		City         string    `json:"city"`
		State        string    `json:"state"`
		PostalCode   string    `json:"postal_code"`
		Country      string    `json:"country"`
		Latitude     *float64  `json:"latitude"`
		Longitude    *float64  `json:"longitude"`
		PlaceID      *string   `json:"place_id"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}

	NearbyResponse struct {
		Response
		DistanceKM float64 `json:"distance_km"`
	}
	NearbyResponses    []NearbyResponse
	NearbyResponseData struct {
		Data NearbyResponses `json:"data"`
	}
)
