package queries

const (
	InsertAppointment = `
		INSERT INTO appointments (
			id,
			patient_id,
			doctor_id,
			shift_id,
			appointment_date,
			reason,
			status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`

	GetAppointmentByID = `
		SELECT
			id,
			patient_id,
			doctor_id,
			shift_id,
			appointment_date,
			reason,
			status,
			created_at,
			updated_at
		FROM appointments
		WHERE id = $1
	`

	GetUpcomingAppointmentsByPatient = `
		SELECT
			id,
			patient_id,
			doctor_id,
			shift_id,
			appointment_date,
			reason,
			status,
			created_at,
			updated_at
		FROM appointments
		WHERE patient_id = $1
		  AND appointment_date >= $2
		  AND status IN ('scheduled', 'confirmed')
		ORDER BY appointment_date
		LIMIT $3 OFFSET $4
	`

	CountUpcomingAppointmentsByPatient = `
		SELECT COUNT(1)
		FROM appointments
		WHERE patient_id = $1
		  AND appointment_date >= $2
		  AND status IN ('scheduled', 'confirmed')
	`

	GetAppointmentsOnDate = `
		SELECT
			id,
			patient_id,
			doctor_id,
			shift_id,
			appointment_date,
			reason,
			status,
			created_at,
			updated_at
		FROM appointments
		WHERE appointment_date = $1
		  AND status IN ('scheduled', 'confirmed')
		ORDER BY appointment_date
	`

	UpdateAppointmentStatus = `
		UPDATE appointments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
)
