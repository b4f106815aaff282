package queries

const (
	GetUserByUsername = `
		SELECT
			id,
			username,
			email,
			password,
			full_name,
			role_name,
			is_active,
			created_at,
			updated_at
		FROM users
		WHERE username = $1 AND is_active = TRUE
	`

	GetUserByID = `
		SELECT
			id,
			username,
			email,
			password,
			full_name,
			role_name,
			is_active,
			created_at,
			updated_at
		FROM users
		WHERE id = $1
	`

	GetUserIDsByRoleNames = `
		SELECT id
		FROM users
		WHERE role_name = ANY($1) AND is_active = TRUE
	`

	GetEmailsByUserIDs = `
		SELECT id, email
		FROM users
		WHERE id = ANY($1) AND is_active = TRUE AND email <> ''
	`

	GetUserIDsByDoctorIDs = `
		SELECT DISTINCT user_id
		FROM doctors
		WHERE id = ANY($1)
	`
)
