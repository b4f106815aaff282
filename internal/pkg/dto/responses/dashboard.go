package responses

type DashboardTotals struct {
	TotalPatients     int     `json:"total_patients"`
	TotalDoctors      int     `json:"total_doctors"`
	AppointmentsToday int     `json:"appointments_today"`
	TotalRevenue      float64 `json:"total_revenue"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type DashboardMonthly struct {
	Year         int              `json:"year"`
	Appointments []MonthlyCount   `json:"appointments"`
	Revenue      []MonthlyRevenue `json:"revenue"`
}
