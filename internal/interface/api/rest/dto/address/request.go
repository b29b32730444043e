package address

type (
	// Request carries an address create or full-replace payload.
	Request struct {
		Street       string   `json:"street"`
		Number       string   `json:"number"`
		Complement   *string  `json:"complement"`
		Neighborhood string   `json:"neighborhood"`
		City         string   `json:"city"`
		State        string   `json:"state"`
		PostalCode   string   `json:"postal_code"`
		Country      string   `json:"country"`
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
		PlaceID      *string  `json:"place_id"`
	}
	// UpdateRequest carries a partial update; absent fields are untouched.
	UpdateRequest struct {
		Street       *string  `json:"street"`
		Number       *string  `json:"number"`
		Complement   *string  `json:"complement"`
		Neighborhood *string  `json:"neighborhood"`
		City         *string  `json:"city"`
		State        *string  `json:"state"`
		PostalCode   *string  `json:"postal_code"`
		Country      *string  `json:"country"`
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
		PlaceID      *string  `json:"place_id"`
	}
)
