package queries

const (
	CountPatients = `
		SELECT COUNT(1) FROM patients
	`

	CountActiveDoctors = `
		SELECT COUNT(1) FROM doctors WHERE is_active = TRUE
	`

	CountAppointmentsOnDate = `
		SELECT COUNT(1)
		FROM appointments
		WHERE appointment_date = $1
		  AND status IN ('scheduled', 'confirmed')
	`

	SumPaidRevenue = `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'paid'
	`

	CountAppointmentsPerMonth = `
		SELECT EXTRACT(MONTH FROM appointment_date)::int AS month, COUNT(1)
		FROM appointments
		WHERE EXTRACT(YEAR FROM appointment_date) = $1
		GROUP BY month
		ORDER BY month
	`

	SumRevenuePerMonth = `
		SELECT EXTRACT(MONTH FROM payment_date)::int AS month, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'paid'
		  AND EXTRACT(YEAR FROM payment_date) = $1
		GROUP BY month
		ORDER BY month
	`
)
