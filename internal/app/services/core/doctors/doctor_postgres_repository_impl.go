package doctors

import (
	"context"
	"database/sql"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"
)

type doctorPostgresRepository struct {
	DB *sql.DB
}

func NewDoctorPostgresRepository(db *sql.DB) contracts.DoctorRepository {
	return &doctorPostgresRepository{
		DB: db,
	}
}

func (repo *doctorPostgresRepository) FindByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	var roomID sql.NullString
	err := repo.DB.QueryRowContext(ctx, queries.GetDoctorByID, id).Scan(
		&doctor.ID,
		&doctor.UserID,
		&doctor.FullName,
		&doctor.Speciality,
		&roomID,
		&doctor.IsActive,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	if roomID.Valid {
		doctor.RoomID = &roomID.String
	}
	return &doctor, nil
}

func (repo *doctorPostgresRepository) FindActive(ctx context.Context) ([]models.Doctor, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetActiveDoctors)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var doctors []models.Doctor
	for rows.Next() {
		var doctor models.Doctor
		var roomID sql.NullString
		if err := rows.Scan(
			&doctor.ID,
			&doctor.UserID,
			&doctor.FullName,
			&doctor.Speciality,
			&roomID,
			&doctor.IsActive,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		if roomID.Valid {
			doctor.RoomID = &roomID.String
		}
		doctors = append(doctors, doctor)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return doctors, nil
}
