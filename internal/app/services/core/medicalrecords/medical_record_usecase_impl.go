package medicalrecords

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const attachmentURLExpiry = 15 * time.Minute

var (
	medicalRecordUsecaseInstance contracts.MedicalRecordUsecase
	onceMedicalRecordUsecase     sync.Once
)

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	PatientRepository       contracts.PatientRepository
	DoctorRepository        contracts.DoctorRepository
	AppointmentRepository   contracts.AppointmentRepository
	StorageService          contracts.StorageService
	Log                     *zap.Logger
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	storageService contracts.StorageService,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	onceMedicalRecordUsecase.Do(func() {
		medicalRecordUsecaseInstance = &medicalRecordUsecase{
			MedicalRecordRepository: medicalRecordRepository,
			PatientRepository:       patientRepository,
			DoctorRepository:        doctorRepository,
			AppointmentRepository:   appointmentRepository,
			StorageService:          storageService,
			Log:                     logger,
		}
	})
	return medicalRecordUsecaseInstance
}

func (uc *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	record := &models.MedicalRecord{
		PatientID:    request.PatientID,
		DoctorID:     request.DoctorID,
		Diagnosis:    request.Diagnosis,
		Prescription: request.Prescription,
		Notes:        request.Notes,
		TotalAmount:  request.TotalAmount,
	}
	if request.AppointmentID != "" {
		appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, exceptions.ErrAppointmentNotFound(nil)
		}
		record.AppointmentID = &request.AppointmentID
	}

	if err := uc.MedicalRecordRepository.Insert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, id string) (*models.MedicalRecord, error) {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}
	return record, nil
}

func (uc *medicalRecordUsecase) GetPatientMedicalRecords(ctx context.Context, patientID string, page, pageSize int) ([]models.MedicalRecord, *responses.Pagination, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, exceptions.ErrPatientNotFound(nil)
	}

	page, pageSize = utils.NormalizePageParams(page, pageSize)
	records, total, err := uc.MedicalRecordRepository.FindByPatient(ctx, patientID, pageSize, utils.PageOffset(page, pageSize))
	if err != nil {
		return nil, nil, err
	}
	return records, utils.BuildPaginationResponse(total, page, pageSize), nil
}

func (uc *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, id string, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error) {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}

	if request.Diagnosis != nil {
		record.Diagnosis = *request.Diagnosis
	}
	if request.Prescription != nil {
		record.Prescription = *request.Prescription
	}
	if request.Notes != nil {
		record.Notes = *request.Notes
	}
	if request.TotalAmount != nil {
		record.TotalAmount = *request.TotalAmount
	}

	if err := uc.MedicalRecordRepository.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, id string) error {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return exceptions.ErrMedicalRecordNotFound(nil)
	}
	return uc.MedicalRecordRepository.Delete(ctx, id)
}

func (uc *medicalRecordUsecase) UploadAttachment(ctx context.Context, medicalRecordID, fileName, contentType string, size int64, reader io.Reader) (*models.MedicalRecordAttachment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("medical_record_id", medicalRecordID),
	)

	record, err := uc.MedicalRecordRepository.FindByID(ctx, medicalRecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}

	objectName := utils.GenerateAttachmentObjectName(medicalRecordID, filepath.Ext(fileName))
	if err := uc.StorageService.UploadObject(ctx, objectName, contentType, size, reader); err != nil {
		return nil, err
	}

	attachment := &models.MedicalRecordAttachment{
		MedicalRecordID: medicalRecordID,
		ObjectName:      objectName,
		FileName:        fileName,
		ContentType:     contentType,
		SizeBytes:       size,
	}
	if err := uc.MedicalRecordRepository.InsertAttachment(ctx, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

func (uc *medicalRecordUsecase) GetAttachments(ctx context.Context, medicalRecordID string) ([]models.MedicalRecordAttachment, error) {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, medicalRecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}

	attachments, err := uc.MedicalRecordRepository.FindAttachments(ctx, medicalRecordID)
	if err != nil {
		return nil, err
	}
	for i := range attachments {
		url, err := uc.StorageService.PresignedGetURL(ctx, attachments[i].ObjectName, attachmentURLExpiry)
		if err != nil {
			uc.Log.Warn("medicalRecordUsecase.GetAttachments presign failed",
				zap.String("object_name", attachments[i].ObjectName),
				zap.Error(err),
			)
			continue
		}
		attachments[i].DownloadURL = url
	}
	return attachments, nil
}
