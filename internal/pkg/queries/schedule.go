package queries

const (
	CountConflictingAssignments = `
		SELECT COUNT(1)
		FROM shift_assignments
		WHERE doctor_id = $1
		  AND shift_id = $2
		  AND status <> 'cancelled'
		  AND ($4::date IS NULL OR effective_from <= $4)
		  AND (effective_to IS NULL OR effective_to >= $3)
		  AND ($5 = '' OR id::text <> $5)
	`

	InsertShiftAssignment = `
		INSERT INTO shift_assignments (
			id,
			doctor_id,
			shift_id,
			effective_from,
			effective_to,
			status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	GetShiftAssignmentByID = `
		SELECT
			id,
			doctor_id,
			shift_id,
			effective_from,
			effective_to,
			status,
			created_at,
			updated_at
		FROM shift_assignments
		WHERE id = $1
	`

	GetAssignmentsByShiftAndExactRange = `
		SELECT
			id,
			doctor_id,
			shift_id,
			effective_from,
			effective_to,
			status,
			created_at,
			updated_at
		FROM shift_assignments
		WHERE shift_id = $1
		  AND effective_from = $2
		  AND (($3::date IS NULL AND effective_to IS NULL) OR effective_to = $3)
	`

	GetAssignmentsActiveOnDate = `
		SELECT
			sa.id,
			sa.doctor_id,
			sa.shift_id,
			sa.effective_from,
			sa.effective_to,
			sa.status,
			sa.created_at,
			sa.updated_at
		FROM shift_assignments sa
		WHERE sa.status = 'active'
		  AND sa.effective_from <= $1
		  AND (sa.effective_to IS NULL OR sa.effective_to >= $1)
		ORDER BY sa.shift_id, sa.doctor_id
	`

	GetAssignmentsByDoctor = `
		SELECT
			id,
			doctor_id,
			shift_id,
			effective_from,
			effective_to,
			status,
			created_at,
			updated_at
		FROM shift_assignments
		WHERE doctor_id = $1
		ORDER BY effective_from DESC
		LIMIT $2 OFFSET $3
	`

	CountAssignmentsByDoctor = `
		SELECT COUNT(1)
		FROM shift_assignments
		WHERE doctor_id = $1
	`

	UpdateShiftAssignmentByID = `
		UPDATE shift_assignments
		SET
			doctor_id = $1,
			shift_id = $2,
			effective_from = $3,
			effective_to = $4,
			status = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	UpdateShiftAssignmentEffectiveTo = `
		UPDATE shift_assignments
		SET effective_to = $1, updated_at = NOW()
		WHERE id = $2
	`

	DeleteShiftAssignment = `
		DELETE FROM shift_assignments
		WHERE id = $1
	`
)
