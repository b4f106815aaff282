package contracts

import (
	"context"
	"io"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
)

type MedicalRecordRepository interface {
	Insert(ctx context.Context, record *models.MedicalRecord) error
	FindByID(ctx context.Context, id string) (*models.MedicalRecord, error)
	FindByPatient(ctx context.Context, patientID string, limit, offset int) ([]models.MedicalRecord, int, error)
	Update(ctx context.Context, record *models.MedicalRecord) error
	Delete(ctx context.Context, id string) error

	InsertAttachment(ctx context.Context, attachment *models.MedicalRecordAttachment) error
	FindAttachments(ctx context.Context, medicalRecordID string) ([]models.MedicalRecordAttachment, error)
}

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error)
	GetMedicalRecord(ctx context.Context, id string) (*models.MedicalRecord, error)
	GetPatientMedicalRecords(ctx context.Context, patientID string, page, pageSize int) ([]models.MedicalRecord, *responses.Pagination, error)
	UpdateMedicalRecord(ctx context.Context, id string, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, id string) error

	UploadAttachment(ctx context.Context, medicalRecordID, fileName, contentType string, size int64, reader io.Reader) (*models.MedicalRecordAttachment, error)
	GetAttachments(ctx context.Context, medicalRecordID string) ([]models.MedicalRecordAttachment, error)
}
