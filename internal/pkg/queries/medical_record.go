package queries

const (
	InsertMedicalRecord = `
		INSERT INTO medical_records (
			id,
			patient_id,
			doctor_id,
			appointment_id,
			diagnosis,
			prescription,
			notes,
			total_amount,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`

	GetMedicalRecordByID = `
		SELECT
			id,
			patient_id,
			doctor_id,
			appointment_id,
			diagnosis,
			prescription,
			notes,
			total_amount,
			created_at,
			updated_at
		FROM medical_records
		WHERE id = $1
	`

	GetMedicalRecordsByPatient = `
		SELECT
			id,
			patient_id,
			doctor_id,
			appointment_id,
			diagnosis,
			prescription,
			notes,
			total_amount,
			created_at,
			updated_at
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	CountMedicalRecordsByPatient = `
		SELECT COUNT(1)
		FROM medical_records
		WHERE patient_id = $1
	`

	UpdateMedicalRecord = `
		UPDATE medical_records
		SET
			diagnosis = $1,
			prescription = $2,
			notes = $3,
			total_amount = $4,
			updated_at = NOW()
		WHERE id = $5
	`

	DeleteMedicalRecord = `
		DELETE FROM medical_records
		WHERE id = $1
	`

	InsertMedicalRecordAttachment = `
		INSERT INTO medical_record_attachments (
			id,
			medical_record_id,
			object_name,
			file_name,
			content_type,
			size_bytes,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	GetAttachmentsByMedicalRecord = `
		SELECT
			id,
			medical_record_id,
			object_name,
			file_name,
			content_type,
			size_bytes,
			created_at
		FROM medical_record_attachments
		WHERE medical_record_id = $1
		ORDER BY created_at
	`
)
