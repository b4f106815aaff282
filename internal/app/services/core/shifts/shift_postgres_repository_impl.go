package shifts

import (
	"context"
	"database/sql"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"

	"github.com/google/uuid"
)

type shiftPostgresRepository struct {
	DB *sql.DB
}

func NewShiftPostgresRepository(db *sql.DB) contracts.ShiftRepository {
	return &shiftPostgresRepository{
		DB: db,
	}
}

func (repo *shiftPostgresRepository) Insert(ctx context.Context, shift *models.Shift) error {
	if shift.ID == "" {
		shift.ID = uuid.NewString()
	}
	_, err := repo.DB.ExecContext(ctx, queries.InsertShift,
		shift.ID,
		shift.Name,
		shift.StartTime,
		shift.EndTime,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *shiftPostgresRepository) FindByID(ctx context.Context, id string) (*models.Shift, error) {
	var shift models.Shift
	err := repo.DB.QueryRowContext(ctx, queries.GetShiftByID, id).Scan(
		&shift.ID,
		&shift.Name,
		&shift.StartTime,
		&shift.EndTime,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &shift, nil
}

func (repo *shiftPostgresRepository) FindAll(ctx context.Context) ([]models.Shift, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAllShifts)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		var shift models.Shift
		if err := rows.Scan(&shift.ID, &shift.Name, &shift.StartTime, &shift.EndTime); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return shifts, nil
}
