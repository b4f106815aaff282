package queries

const (
	InsertPayment = `
		INSERT INTO payments (
			id,
			medical_record_id,
			amount,
			status,
			order_code,
			checkout_url,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	GetLatestPaymentByMedicalRecord = `
		SELECT
			id,
			medical_record_id,
			amount,
			status,
			order_code,
			checkout_url,
			payment_date,
			created_at,
			updated_at
		FROM payments
		WHERE medical_record_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	GetPaymentByOrderCode = `
		SELECT
			id,
			medical_record_id,
			amount,
			status,
			order_code,
			checkout_url,
			payment_date,
			created_at,
			updated_at
		FROM payments
		WHERE order_code = $1
	`

	CountPaymentsByOrderCode = `
		SELECT COUNT(1)
		FROM payments
		WHERE order_code = $1
	`

	UpdatePaymentStatus = `
		UPDATE payments
		SET status = $1, payment_date = $2, updated_at = NOW()
		WHERE id = $3
	`
)
