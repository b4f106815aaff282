package queries

// Read-only reference entities consumed by the scheduling and payment logic.
const (
	GetDoctorByID = `
		SELECT
			id,
			user_id,
			full_name,
			speciality,
			room_id,
			is_active,
			created_at,
			updated_at
		FROM doctors
		WHERE id = $1
	`

	GetActiveDoctors = `
		SELECT
			id,
			user_id,
			full_name,
			speciality,
			room_id,
			is_active,
			created_at,
			updated_at
		FROM doctors
		WHERE is_active = TRUE
		ORDER BY full_name
	`

	GetPatientByID = `
		SELECT
			id,
			user_id,
			full_name,
			date_of_birth,
			gender,
			phone_number,
			address,
			created_at,
			updated_at
		FROM patients
		WHERE id = $1
	`

	InsertShift = `
		INSERT INTO shifts (id, name, start_time, end_time)
		VALUES ($1, $2, $3, $4)
	`

	GetShiftByID = `
		SELECT id, name, start_time, end_time
		FROM shifts
		WHERE id = $1
	`

	GetAllShifts = `
		SELECT id, name, start_time, end_time
		FROM shifts
		ORDER BY start_time
	`
)
