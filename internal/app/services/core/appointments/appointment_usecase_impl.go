package appointments

import (
	"context"
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

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

// allowedTransitions captures the appointment lifecycle: completed and
// cancelled are terminal.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.AppointmentScheduled: {models.AppointmentConfirmed, models.AppointmentCancelled},
	models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled},
}

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	ScheduleRepository    contracts.ScheduleRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	ShiftRepository       contracts.ShiftRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	scheduleRepository contracts.ScheduleRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	shiftRepository contracts.ShiftRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			ScheduleRepository:    scheduleRepository,
			PatientRepository:     patientRepository,
			DoctorRepository:      doctorRepository,
			ShiftRepository:       shiftRepository,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	appointmentDate, err := utils.ParseCalendarDate(request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

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

	shift, err := uc.ShiftRepository.FindByID(ctx, request.ShiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, exceptions.ErrShiftNotFound(nil)
	}

	// A booking only makes sense against a shift the doctor actually holds
	// on that date; the overlap check doubles as the assignment lookup.
	scheduled, err := uc.ScheduleRepository.HasConflict(ctx, request.DoctorID, request.ShiftID, appointmentDate, &appointmentDate, "")
	if err != nil {
		return nil, err
	}
	if !scheduled {
		return nil, exceptions.ErrDoctorNotOnShift(nil)
	}

	appointment := &models.Appointment{
		PatientID:       request.PatientID,
		DoctorID:        request.DoctorID,
		ShiftID:         request.ShiftID,
		AppointmentDate: appointmentDate,
		Reason:          request.Reason,
		Status:          models.AppointmentScheduled,
	}
	if err := uc.AppointmentRepository.Insert(ctx, appointment); err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointment.ID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	target := models.AppointmentStatus(request.Status)
	if target == appointment.Status {
		return nil
	}
	allowed := false
	for _, next := range allowedTransitions[appointment.Status] {
		if next == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	return uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, target)
}

func (uc *appointmentUsecase) GetUpcomingAppointments(ctx context.Context, patientID string, page, pageSize int) ([]models.Appointment, *responses.Pagination, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, exceptions.ErrPatientNotFound(nil)
	}

	page, pageSize = utils.NormalizePageParams(page, pageSize)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	appointments, total, err := uc.AppointmentRepository.FindUpcomingByPatient(ctx, patientID, today, pageSize, utils.PageOffset(page, pageSize))
	if err != nil {
		return nil, nil, err
	}
	return appointments, utils.BuildPaginationResponse(total, page, pageSize), nil
}
