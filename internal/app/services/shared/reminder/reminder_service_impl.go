package reminder

import (
	"context"
	"fmt"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ReminderService runs the daily appointment-reminder cycle. One instance per
// deployment; each fire notifies every patient with an appointment the next
// day. A missed or delayed cycle is not caught up.
type ReminderService struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	NotificationUsecase   contracts.NotificationUsecase
	Log                   *zap.Logger
}

func NewReminderService(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	notificationUsecase contracts.NotificationUsecase,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		DoctorRepository:      doctorRepository,
		NotificationUsecase:   notificationUsecase,
		Log:                   logger,
	}
}

// Run blocks until the context is cancelled. The first fire comes from
// NextReminderFire; every later fire is the previous one plus 24 hours so the
// cycle does not drift.
func (s *ReminderService) Run(ctx context.Context) {
	fireAt := utils.NextReminderFire(time.Now())
	timer := time.NewTimer(time.Until(fireAt))
	defer timer.Stop()

	s.Log.Info("ReminderService.Run started",
		zap.Time("first_fire", fireAt),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.runCycle(ctx)
			fireAt = fireAt.Add(24 * time.Hour)
			timer.Reset(time.Until(fireAt))
		}
	}
}

func (s *ReminderService) runCycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	requestID := utils.GenerateRequestID()
	cycleCtx = context.WithValue(cycleCtx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	targetDate := time.Now().AddDate(0, 0, 1)
	appointments, err := s.AppointmentRepository.FindOnDate(cycleCtx, targetDate)
	if err != nil {
		s.Log.Error("ReminderService.runCycle failed to list appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	sent := 0
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.Status == models.AppointmentCancelled || appointment.Status == models.AppointmentCompleted {
			continue
		}
		if err := s.remindAppointment(cycleCtx, appointment); err != nil {
			s.Log.Warn("ReminderService.runCycle reminder failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("appointment_id", appointment.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.Log.Info("ReminderService.runCycle finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("target_date", utils.FormatCalendarDate(targetDate)),
		zap.Int("appointments", len(appointments)),
		zap.Int("reminders_sent", sent),
	)
}

func (s *ReminderService) remindAppointment(ctx context.Context, appointment *models.Appointment) error {
	patient, err := s.PatientRepository.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return err
	}
	if patient == nil || patient.UserID == nil {
		// Walk-in patients have no account to notify.
		return nil
	}

	doctorName := ""
	if doctor, err := s.DoctorRepository.FindByID(ctx, appointment.DoctorID); err == nil && doctor != nil {
		doctorName = doctor.FullName
	}

	appointmentDate := utils.FormatCalendarDate(appointment.AppointmentDate)
	content := fmt.Sprintf("You have an appointment with %s on %s.", doctorName, appointmentDate)

	_, err = s.NotificationUsecase.SendNotification(ctx, &requests.SendNotification{
		Title:       constvars.EmailAppointmentReminderSubject,
		Content:     content,
		Type:        string(models.NotificationTypeAppointment),
		ReceiverIDs: []string{*patient.UserID},
		EmailTemplate: constvars.EmailTemplateAppointmentReminder,
		EmailValues: map[string]string{
			"patient_name":     patient.FullName,
			"doctor_name":      doctorName,
			"appointment_date": appointmentDate,
		},
	})
	return err
}
