package dashboard

import (
	"context"
	"sync"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

type dashboardUsecase struct {
	DashboardRepository contracts.DashboardRepository
	Log                 *zap.Logger
}

func NewDashboardUsecase(dashboardRepository contracts.DashboardRepository, logger *zap.Logger) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			DashboardRepository: dashboardRepository,
			Log:                 logger,
		}
	})
	return dashboardUsecaseInstance
}

func (uc *dashboardUsecase) GetTotals(ctx context.Context) (*responses.DashboardTotals, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetTotals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	totalPatients, err := uc.DashboardRepository.CountPatients(ctx)
	if err != nil {
		return nil, err
	}
	totalDoctors, err := uc.DashboardRepository.CountActiveDoctors(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	appointmentsToday, err := uc.DashboardRepository.CountAppointmentsOnDate(ctx, today)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := uc.DashboardRepository.SumPaidRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.DashboardTotals{
		TotalPatients:     totalPatients,
		TotalDoctors:      totalDoctors,
		AppointmentsToday: appointmentsToday,
		TotalRevenue:      totalRevenue,
	}, nil
}

func (uc *dashboardUsecase) GetMonthly(ctx context.Context, year int) (*responses.DashboardMonthly, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetMonthly called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("year", year),
	)

	if year == 0 {
		year = time.Now().Year()
	}

	appointments, err := uc.DashboardRepository.CountAppointmentsPerMonth(ctx, year)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.DashboardRepository.SumRevenuePerMonth(ctx, year)
	if err != nil {
		return nil, err
	}

	response := &responses.DashboardMonthly{Year: year}
	for month := 1; month <= 12; month++ {
		monthName := time.Month(month).String()
		response.Appointments = append(response.Appointments, responses.MonthlyCount{
			Month: monthName,
			Count: appointments[month],
		})
		response.Revenue = append(response.Revenue, responses.MonthlyRevenue{
			Month:   monthName,
			Revenue: revenue[month],
		})
	}
	return response, nil
}
