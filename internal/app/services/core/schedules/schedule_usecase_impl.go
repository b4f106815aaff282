package schedules

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicare-service/internal/app/config"
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
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

type scheduleUsecase struct {
	ScheduleRepository  contracts.ScheduleRepository
	DoctorRepository    contracts.DoctorRepository
	ShiftRepository     contracts.ShiftRepository
	UserRepository      contracts.UserRepository
	NotificationUsecase contracts.NotificationUsecase
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	doctorRepository contracts.DoctorRepository,
	shiftRepository contracts.ShiftRepository,
	userRepository contracts.UserRepository,
	notificationUsecase contracts.NotificationUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		scheduleUsecaseInstance = &scheduleUsecase{
			ScheduleRepository:  scheduleRepository,
			DoctorRepository:    doctorRepository,
			ShiftRepository:     shiftRepository,
			UserRepository:      userRepository,
			NotificationUsecase: notificationUsecase,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.CreateSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	effectiveFrom, err := utils.ParseCalendarDate(request.EffectiveFrom)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	var effectiveTo *time.Time
	if request.EffectiveTo != "" {
		parsed, err := utils.ParseCalendarDate(request.EffectiveTo)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		if parsed.Before(effectiveFrom) {
			return nil, exceptions.ErrInvalidDateRange(nil)
		}
		effectiveTo = &parsed
	}

	var assignments []models.ShiftAssignment
	for _, shiftDoctors := range request.Shifts {
		shift, err := uc.ShiftRepository.FindByID(ctx, shiftDoctors.ShiftID)
		if err != nil {
			return nil, err
		}
		if shift == nil {
			return nil, exceptions.ErrShiftNotFound(nil)
		}

		for _, doctorID := range shiftDoctors.DoctorIDs {
			doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
			if err != nil {
				return nil, err
			}
			if doctor == nil {
				return nil, exceptions.ErrDoctorNotFound(nil)
			}

			assignments = append(assignments, models.ShiftAssignment{
				DoctorID:      doctorID,
				ShiftID:       shiftDoctors.ShiftID,
				EffectiveFrom: effectiveFrom,
				EffectiveTo:   effectiveTo,
				Status:        models.AssignmentActive,
			})
		}
	}

	skipConflicts := uc.InternalConfig.Schedule.ConflictPolicy == constvars.ScheduleConflictPolicySkip
	created, skippedAssignments, err := uc.ScheduleRepository.CreateAssignments(ctx, assignments, skipConflicts)
	if err != nil {
		return nil, err
	}

	response := &responses.CreateSchedule{CreatedCount: created}
	skippedDoctors := make(map[string]bool, len(skippedAssignments))
	for _, skipped := range skippedAssignments {
		response.Skipped = append(response.Skipped, responses.SkippedDoctor{
			DoctorID: skipped.DoctorID,
			ShiftID:  skipped.ShiftID,
			Reason:   constvars.ErrClientScheduleConflict,
		})
		skippedDoctors[skipped.DoctorID] = true
	}

	uc.notifyScheduledDoctors(ctx, assignments, skippedDoctors, request.EffectiveFrom, request.EffectiveTo)

	uc.Log.Info("scheduleUsecase.CreateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("created", created),
		zap.Int("skipped", len(skippedAssignments)),
	)
	return response, nil
}

// notifyScheduledDoctors sends one "new schedule" notification to the
// distinct doctors that actually received assignments. Failure here never
// fails the schedule creation.
func (uc *scheduleUsecase) notifyScheduledDoctors(ctx context.Context, assignments []models.ShiftAssignment, skippedDoctors map[string]bool, effectiveFrom, effectiveTo string) {
	var doctorIDs []string
	seen := make(map[string]bool)
	for _, assignment := range assignments {
		if skippedDoctors[assignment.DoctorID] || seen[assignment.DoctorID] {
			continue
		}
		seen[assignment.DoctorID] = true
		doctorIDs = append(doctorIDs, assignment.DoctorID)
	}
	if len(doctorIDs) == 0 {
		return
	}

	userIDs, err := uc.UserRepository.FindUserIDsByDoctorIDs(ctx, doctorIDs)
	if err != nil || len(userIDs) == 0 {
		if err != nil {
			uc.Log.Warn("scheduleUsecase.notifyScheduledDoctors failed to resolve users", zap.Error(err))
		}
		return
	}

	content := fmt.Sprintf("You have been assigned a new work schedule starting %s.", effectiveFrom)
	if effectiveTo != "" {
		content = fmt.Sprintf("You have been assigned a new work schedule from %s to %s.", effectiveFrom, effectiveTo)
	}
	_, err = uc.NotificationUsecase.SendNotification(ctx, &requests.SendNotification{
		Title:         constvars.EmailNewScheduleSubject,
		Content:       content,
		Type:          string(models.NotificationTypeSchedule),
		ReceiverIDs:   userIDs,
		EmailTemplate: constvars.EmailTemplateNewSchedule,
		EmailValues: map[string]string{
			"effective_from": effectiveFrom,
			"effective_to":   effectiveTo,
			"content":        content,
		},
	})
	if err != nil {
		uc.Log.Warn("scheduleUsecase.notifyScheduledDoctors notification failed", zap.Error(err))
	}
}

func (uc *scheduleUsecase) UpdateScheduleByDate(ctx context.Context, request *requests.UpdateScheduleByDate) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpdateScheduleByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftIDKey, request.ShiftID),
	)

	date, err := utils.ParseCalendarDate(request.Date)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}

	shift, err := uc.ShiftRepository.FindByID(ctx, request.ShiftID)
	if err != nil {
		return err
	}
	if shift == nil {
		return exceptions.ErrShiftNotFound(nil)
	}

	// A single calendar date is the degenerate range [date, date].
	return uc.ScheduleRepository.ReconcileRange(ctx, request.ShiftID, date, &date, nil, request.AddDoctorIDs, request.RemoveDoctorIDs)
}

func (uc *scheduleUsecase) UpdateScheduleByID(ctx context.Context, assignmentID string, request *requests.UpdateScheduleByID) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpdateScheduleByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("assignment_id", assignmentID),
	)

	assignment, err := uc.ScheduleRepository.FindByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return exceptions.ErrAssignmentNotFound(nil)
	}

	if request.DoctorID != nil {
		doctor, err := uc.DoctorRepository.FindByID(ctx, *request.DoctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return exceptions.ErrDoctorNotFound(nil)
		}
		assignment.DoctorID = *request.DoctorID
	}
	if request.ShiftID != nil {
		shift, err := uc.ShiftRepository.FindByID(ctx, *request.ShiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return exceptions.ErrShiftNotFound(nil)
		}
		assignment.ShiftID = *request.ShiftID
	}
	if request.EffectiveFrom != nil {
		parsed, err := utils.ParseCalendarDate(*request.EffectiveFrom)
		if err != nil {
			return exceptions.ErrCannotParseDate(err)
		}
		assignment.EffectiveFrom = parsed
	}
	if request.EffectiveTo != nil {
		if *request.EffectiveTo == "" {
			assignment.EffectiveTo = nil
		} else {
			parsed, err := utils.ParseCalendarDate(*request.EffectiveTo)
			if err != nil {
				return exceptions.ErrCannotParseDate(err)
			}
			assignment.EffectiveTo = &parsed
		}
	}
	if request.Status != nil {
		assignment.Status = models.AssignmentStatus(*request.Status)
	}

	if assignment.EffectiveTo != nil && assignment.EffectiveTo.Before(assignment.EffectiveFrom) {
		return exceptions.ErrInvalidDateRange(nil)
	}

	if assignment.Status != models.AssignmentCancelled {
		conflicted, err := uc.ScheduleRepository.HasConflict(ctx, assignment.DoctorID, assignment.ShiftID, assignment.EffectiveFrom, assignment.EffectiveTo, assignment.ID)
		if err != nil {
			return err
		}
		if conflicted {
			return exceptions.ErrScheduleConflict(nil)
		}
	}

	return uc.ScheduleRepository.UpdateByID(ctx, assignment)
}

func (uc *scheduleUsecase) UpdateScheduleRange(ctx context.Context, request *requests.UpdateScheduleRange) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpdateScheduleRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftIDKey, request.ShiftID),
	)

	fromDate, err := utils.ParseCalendarDate(request.FromDate)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}
	toDate, err := utils.ParseCalendarDate(request.ToDate)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}
	if toDate.Before(fromDate) {
		return exceptions.ErrInvalidDateRange(nil)
	}

	var newToDate *time.Time
	if request.NewToDate != "" {
		parsed, err := utils.ParseCalendarDate(request.NewToDate)
		if err != nil {
			return exceptions.ErrCannotParseDate(err)
		}
		if parsed.Before(fromDate) {
			return exceptions.ErrInvalidDateRange(nil)
		}
		newToDate = &parsed
	}

	shift, err := uc.ShiftRepository.FindByID(ctx, request.ShiftID)
	if err != nil {
		return err
	}
	if shift == nil {
		return exceptions.ErrShiftNotFound(nil)
	}

	return uc.ScheduleRepository.ReconcileRange(ctx, request.ShiftID, fromDate, &toDate, newToDate, request.AddDoctorIDs, request.RemoveDoctorIDs)
}

func (uc *scheduleUsecase) GetDailySchedule(ctx context.Context, date string) (*responses.DailySchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetDailySchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("date", date),
	)

	parsedDate, err := utils.ParseCalendarDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	assignments, err := uc.ScheduleRepository.FindActiveOnDate(ctx, parsedDate)
	if err != nil {
		return nil, err
	}

	shifts, err := uc.ShiftRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byShift := make(map[string][]responses.ShiftAssignment)
	for _, assignment := range assignments {
		entry := uc.buildAssignmentResponse(ctx, &assignment)
		byShift[assignment.ShiftID] = append(byShift[assignment.ShiftID], entry)
	}

	response := &responses.DailySchedule{Date: date}
	for _, shift := range shifts {
		doctors, ok := byShift[shift.ID]
		if !ok {
			continue
		}
		response.Shifts = append(response.Shifts, responses.ShiftSchedule{
			ShiftID:   shift.ID,
			ShiftName: shift.Name,
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
			Doctors:   doctors,
		})
	}
	return response, nil
}

func (uc *scheduleUsecase) GetDoctorAssignments(ctx context.Context, doctorID string, page, pageSize int) ([]responses.ShiftAssignment, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetDoctorAssignments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	if doctor == nil {
		return nil, nil, exceptions.ErrDoctorNotFound(nil)
	}

	page, pageSize = utils.NormalizePageParams(page, pageSize)
	assignments, total, err := uc.ScheduleRepository.FindByDoctor(ctx, doctorID, pageSize, utils.PageOffset(page, pageSize))
	if err != nil {
		return nil, nil, err
	}

	results := make([]responses.ShiftAssignment, 0, len(assignments))
	for i := range assignments {
		results = append(results, uc.buildAssignmentResponse(ctx, &assignments[i]))
	}
	return results, utils.BuildPaginationResponse(total, page, pageSize), nil
}

func (uc *scheduleUsecase) CreateShift(ctx context.Context, request *requests.CreateShift) (*models.Shift, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateShift called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	startTime, err := time.Parse(constvars.TimeOfDayLayout, request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	endTime, err := time.Parse(constvars.TimeOfDayLayout, request.EndTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if !endTime.After(startTime) {
		return nil, exceptions.ErrInvalidShiftTimes(nil)
	}

	shift := &models.Shift{
		Name:      request.Name,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
	}
	if err := uc.ShiftRepository.Insert(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (uc *scheduleUsecase) GetDoctors(ctx context.Context) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		results = append(results, responses.Doctor{
			ID:         doctor.ID,
			FullName:   doctor.FullName,
			Speciality: doctor.Speciality,
			RoomID:     doctor.RoomID,
		})
	}
	return results, nil
}

func (uc *scheduleUsecase) buildAssignmentResponse(ctx context.Context, assignment *models.ShiftAssignment) responses.ShiftAssignment {
	entry := responses.ShiftAssignment{
		ID:            assignment.ID,
		DoctorID:      assignment.DoctorID,
		ShiftID:       assignment.ShiftID,
		EffectiveFrom: utils.FormatCalendarDate(assignment.EffectiveFrom),
		Status:        string(assignment.Status),
	}
	if assignment.EffectiveTo != nil {
		formatted := utils.FormatCalendarDate(*assignment.EffectiveTo)
		entry.EffectiveTo = &formatted
	}
	if doctor, err := uc.DoctorRepository.FindByID(ctx, assignment.DoctorID); err == nil && doctor != nil {
		entry.DoctorName = doctor.FullName
	}
	if shift, err := uc.ShiftRepository.FindByID(ctx, assignment.ShiftID); err == nil && shift != nil {
		entry.ShiftName = shift.Name
	}
	return entry
}
