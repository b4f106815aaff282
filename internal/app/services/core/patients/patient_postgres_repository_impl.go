package patients

import (
	"context"
	"database/sql"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"
)

type patientPostgresRepository struct {
	DB *sql.DB
}

func NewPatientPostgresRepository(db *sql.DB) contracts.PatientRepository {
	return &patientPostgresRepository{
		DB: db,
	}
}

func (repo *patientPostgresRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	var userID sql.NullString
	var dateOfBirth sql.NullTime
	err := repo.DB.QueryRowContext(ctx, queries.GetPatientByID, id).Scan(
		&patient.ID,
		&userID,
		&patient.FullName,
		&dateOfBirth,
		&patient.Gender,
		&patient.PhoneNumber,
		&patient.Address,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	if userID.Valid {
		patient.UserID = &userID.String
	}
	if dateOfBirth.Valid {
		patient.DateOfBirth = &dateOfBirth.Time
	}
	return &patient, nil
}
