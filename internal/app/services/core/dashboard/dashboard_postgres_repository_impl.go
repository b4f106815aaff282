package dashboard

import (
	"context"
	"database/sql"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"
)

type dashboardPostgresRepository struct {
	DB *sql.DB
}

func NewDashboardPostgresRepository(db *sql.DB) contracts.DashboardRepository {
	return &dashboardPostgresRepository{
		DB: db,
	}
}

func (repo *dashboardPostgresRepository) CountPatients(ctx context.Context) (int, error) {
	return repo.scanCount(ctx, queries.CountPatients)
}

func (repo *dashboardPostgresRepository) CountActiveDoctors(ctx context.Context) (int, error) {
	return repo.scanCount(ctx, queries.CountActiveDoctors)
}

func (repo *dashboardPostgresRepository) CountAppointmentsOnDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	if err := repo.DB.QueryRowContext(ctx, queries.CountAppointmentsOnDate, date).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (repo *dashboardPostgresRepository) SumPaidRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := repo.DB.QueryRowContext(ctx, queries.SumPaidRevenue).Scan(&total); err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (repo *dashboardPostgresRepository) CountAppointmentsPerMonth(ctx context.Context, year int) (map[int]int, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.CountAppointmentsPerMonth, year)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var month, count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		counts[month] = count
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return counts, nil
}

func (repo *dashboardPostgresRepository) SumRevenuePerMonth(ctx context.Context, year int) (map[int]float64, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.SumRevenuePerMonth, year)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	revenue := make(map[int]float64)
	for rows.Next() {
		var month int
		var amount float64
		if err := rows.Scan(&month, &amount); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		revenue[month] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return revenue, nil
}

func (repo *dashboardPostgresRepository) scanCount(ctx context.Context, query string) (int, error) {
	var count int
	if err := repo.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}
