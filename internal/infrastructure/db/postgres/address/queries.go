package address

const addressColumns = `id, uuid, street, number, complement, neighborhood, city, state, postal_code, country, latitude, longitude, place_id, created_at, updated_at`

const (
	SelectAddressByUUID = `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE uuid = $1
	`
	SelectAddressByPlaceID = `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE place_id = $1
	`
	SelectAddressesWithCoordinates = `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	`
	InsertAddress = `
		INSERT INTO addresses (street, number, complement, neighborhood, city, state, postal_code, country, latitude, longitude, place_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + addressColumns + `
	`
	UpdateAddressByUUID = `
		UPDATE addresses
		SET street = $2,
		    number = $3,
		    complement = $4,
		    neighborhood = $5,
		    city = $6,
		    state = $7,
		    postal_code = $8,
		    country = $9,
		    latitude = $10,
		    longitude = $11,
		    place_id = $12,
		    updated_at = now()
		WHERE uuid = $1
		RETURNING ` + addressColumns + `
	`
	DeleteAddressByUUID = `
		DELETE FROM addresses
		WHERE uuid = $1
		RETURNING ` + addressColumns + `
	`
)
