package user

const userColumns = `id, uuid, identity_key, email, role, full_name, document_type, document_id, date_of_birth, gender, phone_number, secondary_email, address_id, is_active, is_deleted, profile_completed, created_at, updated_at`

const (
	SelectUserByUUID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE uuid = $1
	`
	SelectUserByIdentityKey = `
		SELECT ` + userColumns + `
		FROM users
		WHERE identity_key = $1
	`
	SelectUserByDocumentID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE document_id = $1
	`
	SelectUserByPhone = `
		SELECT ` + userColumns + `
		FROM users
		WHERE phone_number = $1
	`
	SelectUserBySecondaryEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE secondary_email = $1
	`
	InsertUser = `
		INSERT INTO users (identity_key, email, role)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns + `
	`
	UpdateUserProfileByUUID = `
		UPDATE users
		SET full_name = $2,
		    document_type = $3,
		    document_id = $4,
		    date_of_birth = $5,
		    gender = $6,
		    phone_number = $7,
		    secondary_email = $8,
		    address_id = $9,
		    profile_completed = $10,
		    updated_at = now()
		WHERE uuid = $1 AND is_deleted = FALSE
		RETURNING ` + userColumns + `
	`
	UpdateUserStatusByUUID = `
		UPDATE users
		SET is_active = $2,
		    is_deleted = $3,
		    updated_at = now()
		WHERE uuid = $1
		RETURNING ` + userColumns + `
	`
	HardDeleteUserByUUID = `
		DELETE FROM users
		WHERE uuid = $1
		RETURNING ` + userColumns + `
	`
)
