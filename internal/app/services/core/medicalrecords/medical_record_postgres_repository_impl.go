package medicalrecords

import (
	"context"
	"database/sql"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"

	"github.com/google/uuid"
)

type medicalRecordPostgresRepository struct {
	DB *sql.DB
}

func NewMedicalRecordPostgresRepository(db *sql.DB) contracts.MedicalRecordRepository {
	return &medicalRecordPostgresRepository{
		DB: db,
	}
}

func (repo *medicalRecordPostgresRepository) Insert(ctx context.Context, record *models.MedicalRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	var appointmentID sql.NullString
	if record.AppointmentID != nil {
		appointmentID = sql.NullString{String: *record.AppointmentID, Valid: true}
	}
	_, err := repo.DB.ExecContext(ctx, queries.InsertMedicalRecord,
		record.ID,
		record.PatientID,
		record.DoctorID,
		appointmentID,
		record.Diagnosis,
		record.Prescription,
		record.Notes,
		record.TotalAmount,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *medicalRecordPostgresRepository) FindByID(ctx context.Context, id string) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	var appointmentID sql.NullString
	err := repo.DB.QueryRowContext(ctx, queries.GetMedicalRecordByID, id).Scan(
		&record.ID,
		&record.PatientID,
		&record.DoctorID,
		&appointmentID,
		&record.Diagnosis,
		&record.Prescription,
		&record.Notes,
		&record.TotalAmount,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	if appointmentID.Valid {
		record.AppointmentID = &appointmentID.String
	}
	return &record, nil
}

func (repo *medicalRecordPostgresRepository) FindByPatient(ctx context.Context, patientID string, limit, offset int) ([]models.MedicalRecord, int, error) {
	var total int
	if err := repo.DB.QueryRowContext(ctx, queries.CountMedicalRecordsByPatient, patientID).Scan(&total); err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetMedicalRecordsByPatient, patientID, limit, offset)
	if err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var records []models.MedicalRecord
	for rows.Next() {
		var record models.MedicalRecord
		var appointmentID sql.NullString
		if err := rows.Scan(
			&record.ID,
			&record.PatientID,
			&record.DoctorID,
			&appointmentID,
			&record.Diagnosis,
			&record.Prescription,
			&record.Notes,
			&record.TotalAmount,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, 0, exceptions.ErrPostgresDBScanRow(err)
		}
		if appointmentID.Valid {
			record.AppointmentID = &appointmentID.String
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	return records, total, nil
}

func (repo *medicalRecordPostgresRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	result, err := repo.DB.ExecContext(ctx, queries.UpdateMedicalRecord,
		record.Diagnosis,
		record.Prescription,
		record.Notes,
		record.TotalAmount,
		record.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrMedicalRecordNotFound(sql.ErrNoRows)
	}
	return nil
}

func (repo *medicalRecordPostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.DB.ExecContext(ctx, queries.DeleteMedicalRecord, id)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrMedicalRecordNotFound(sql.ErrNoRows)
	}
	return nil
}

func (repo *medicalRecordPostgresRepository) InsertAttachment(ctx context.Context, attachment *models.MedicalRecordAttachment) error {
	if attachment.ID == "" {
		attachment.ID = uuid.NewString()
	}
	_, err := repo.DB.ExecContext(ctx, queries.InsertMedicalRecordAttachment,
		attachment.ID,
		attachment.MedicalRecordID,
		attachment.ObjectName,
		attachment.FileName,
		attachment.ContentType,
		attachment.SizeBytes,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *medicalRecordPostgresRepository) FindAttachments(ctx context.Context, medicalRecordID string) ([]models.MedicalRecordAttachment, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAttachmentsByMedicalRecord, medicalRecordID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var attachments []models.MedicalRecordAttachment
	for rows.Next() {
		var attachment models.MedicalRecordAttachment
		if err := rows.Scan(
			&attachment.ID,
			&attachment.MedicalRecordID,
			&attachment.ObjectName,
			&attachment.FileName,
			&attachment.ContentType,
			&attachment.SizeBytes,
			&attachment.CreatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		attachments = append(attachments, attachment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return attachments, nil
}
