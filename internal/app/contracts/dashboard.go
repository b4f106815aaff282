package contracts

import (
	"context"
	"time"

	"clinicare-service/internal/pkg/dto/responses"
)

type DashboardRepository interface {
	CountPatients(ctx context.Context) (int, error)
	CountActiveDoctors(ctx context.Context) (int, error)
	CountAppointmentsOnDate(ctx context.Context, date time.Time) (int, error)
	SumPaidRevenue(ctx context.Context) (float64, error)
	CountAppointmentsPerMonth(ctx context.Context, year int) (map[int]int, error)
	SumRevenuePerMonth(ctx context.Context, year int) (map[int]float64, error)
}

type DashboardUsecase interface {
	GetTotals(ctx context.Context) (*responses.DashboardTotals, error)
	GetMonthly(ctx context.Context, year int) (*responses.DashboardMonthly, error)
}
