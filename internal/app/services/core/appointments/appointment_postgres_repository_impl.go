package appointments

import (
	"context"
	"database/sql"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"

	"github.com/google/uuid"
)

type appointmentPostgresRepository struct {
	DB *sql.DB
}

func NewAppointmentPostgresRepository(db *sql.DB) contracts.AppointmentRepository {
	return &appointmentPostgresRepository{
		DB: db,
	}
}

func (repo *appointmentPostgresRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	_, err := repo.DB.ExecContext(ctx, queries.InsertAppointment,
		appointment.ID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.ShiftID,
		appointment.AppointmentDate,
		appointment.Reason,
		appointment.Status,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *appointmentPostgresRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.DB.QueryRowContext(ctx, queries.GetAppointmentByID, id).Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.ShiftID,
		&appointment.AppointmentDate,
		&appointment.Reason,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &appointment, nil
}

func (repo *appointmentPostgresRepository) FindUpcomingByPatient(ctx context.Context, patientID string, from time.Time, limit, offset int) ([]models.Appointment, int, error) {
	var total int
	if err := repo.DB.QueryRowContext(ctx, queries.CountUpcomingAppointmentsByPatient, patientID, from).Scan(&total); err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetUpcomingAppointmentsByPatient, patientID, from, limit, offset)
	if err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments, err := scanAppointments(rows)
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (repo *appointmentPostgresRepository) FindOnDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAppointmentsOnDate, date)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func (repo *appointmentPostgresRepository) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	result, err := repo.DB.ExecContext(ctx, queries.UpdateAppointmentStatus, status, id)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrAppointmentNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanAppointments(rows *sql.Rows) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for rows.Next() {
		var model models.Appointment
		if err := rows.Scan(
			&model.ID,
			&model.PatientID,
			&model.DoctorID,
			&model.ShiftID,
			&model.AppointmentDate,
			&model.Reason,
			&model.Status,
			&model.CreatedAt,
			&model.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		appointments = append(appointments, model)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointments, nil
}
