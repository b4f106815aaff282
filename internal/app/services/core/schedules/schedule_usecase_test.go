package schedules

import (
	"context"
	"testing"
	"time"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) HasConflict(ctx context.Context, doctorID, shiftID string, rangeStart time.Time, rangeEnd *time.Time, excludeID string) (bool, error) {
	args := m.Called(ctx, doctorID, shiftID, rangeStart, rangeEnd, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockScheduleRepository) CreateAssignments(ctx context.Context, assignments []models.ShiftAssignment, skipConflicts bool) (int, []models.ShiftAssignment, error) {
	args := m.Called(ctx, assignments, skipConflicts)
	return args.Int(0), args.Get(1).([]models.ShiftAssignment), args.Error(2)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id string) (*models.ShiftAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftAssignment), args.Error(1)
}

func (m *MockScheduleRepository) FindByShiftAndExactRange(ctx context.Context, shiftID string, fromDate time.Time, toDate *time.Time) ([]models.ShiftAssignment, error) {
	args := m.Called(ctx, shiftID, fromDate, toDate)
	return args.Get(0).([]models.ShiftAssignment), args.Error(1)
}

func (m *MockScheduleRepository) FindActiveOnDate(ctx context.Context, date time.Time) ([]models.ShiftAssignment, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.ShiftAssignment), args.Error(1)
}

func (m *MockScheduleRepository) FindByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]models.ShiftAssignment, int, error) {
	args := m.Called(ctx, doctorID, limit, offset)
	return args.Get(0).([]models.ShiftAssignment), args.Int(1), args.Error(2)
}

func (m *MockScheduleRepository) ReconcileRange(ctx context.Context, shiftID string, fromDate time.Time, toDate, newToDate *time.Time, addDoctorIDs, removeDoctorIDs []string) error {
	args := m.Called(ctx, shiftID, fromDate, toDate, newToDate, addDoctorIDs, removeDoctorIDs)
	return args.Error(0)
}

func (m *MockScheduleRepository) UpdateByID(ctx context.Context, assignment *models.ShiftAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id string) (*models.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindActive(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) Insert(ctx context.Context, shift *models.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) FindByID(ctx context.Context, id string) (*models.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindAll(ctx context.Context) ([]models.Shift, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Shift), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserIDsByRoles(ctx context.Context, roleNames []string) ([]string, error) {
	args := m.Called(ctx, roleNames)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) FindEmailsByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockUserRepository) FindUserIDsByDoctorIDs(ctx context.Context, doctorIDs []string) ([]string, error) {
	args := m.Called(ctx, doctorIDs)
	return args.Get(0).([]string), args.Error(1)
}

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) SendNotification(ctx context.Context, request *requests.SendNotification) (*responses.SendNotification, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SendNotification), args.Error(1)
}

func (m *MockNotificationUsecase) GetUserNotifications(ctx context.Context, userID string, page, pageSize int) ([]responses.UserNotification, *responses.Pagination, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]responses.UserNotification), args.Get(1).(*responses.Pagination), args.Error(2)
}

func (m *MockNotificationUsecase) GetUnreadCount(ctx context.Context, userID string) (*responses.UnreadCount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*responses.UnreadCount), args.Error(1)
}

func (m *MockNotificationUsecase) MarkRead(ctx context.Context, userID, notificationID string) (*responses.MarkRead, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Get(0).(*responses.MarkRead), args.Error(1)
}

func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestScheduleUsecase(conflictPolicy string) (*scheduleUsecase, *MockScheduleRepository, *MockDoctorRepository, *MockShiftRepository, *MockUserRepository, *MockNotificationUsecase) {
	scheduleRepo := new(MockScheduleRepository)
	doctorRepo := new(MockDoctorRepository)
	shiftRepo := new(MockShiftRepository)
	userRepo := new(MockUserRepository)
	notificationUC := new(MockNotificationUsecase)

	uc := &scheduleUsecase{
		ScheduleRepository:  scheduleRepo,
		DoctorRepository:    doctorRepo,
		ShiftRepository:     shiftRepo,
		UserRepository:      userRepo,
		NotificationUsecase: notificationUC,
		InternalConfig: &config.InternalConfig{
			Schedule: config.Schedule{ConflictPolicy: conflictPolicy},
		},
		Log: zap.NewNop(),
	}
	return uc, scheduleRepo, doctorRepo, shiftRepo, userRepo, notificationUC
}

func TestCreateSchedule(t *testing.T) {
	shift := &models.Shift{ID: "shift-1", Name: "Morning"}
	doctor := &models.Doctor{ID: "doctor-1", FullName: "dr. Budi", IsActive: true}

	t.Run("creates assignments and notifies scheduled doctors", func(t *testing.T) {
		uc, scheduleRepo, doctorRepo, shiftRepo, userRepo, notificationUC := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		shiftRepo.On("FindByID", mock.Anything, "shift-1").Return(shift, nil)
		doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(doctor, nil)
		scheduleRepo.On("CreateAssignments", mock.Anything, mock.Anything, false).
			Return(1, []models.ShiftAssignment{}, nil)
		userRepo.On("FindUserIDsByDoctorIDs", mock.Anything, []string{"doctor-1"}).
			Return([]string{"user-1"}, nil)
		notificationUC.On("SendNotification", mock.Anything, mock.MatchedBy(func(req *requests.SendNotification) bool {
			return len(req.ReceiverIDs) == 1 && req.ReceiverIDs[0] == "user-1" &&
				req.EmailTemplate == constvars.EmailTemplateNewSchedule
		})).Return(&responses.SendNotification{NotificationID: "n-1", ReceiverCount: 1}, nil)

		result, err := uc.CreateSchedule(context.Background(), &requests.CreateSchedule{
			EffectiveFrom: "2025-03-10",
			EffectiveTo:   "2025-03-20",
			Shifts: []requests.ShiftDoctors{
				{ShiftID: "shift-1", DoctorIDs: []string{"doctor-1"}},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.CreatedCount)
		assert.Empty(t, result.Skipped)
		notificationUC.AssertExpectations(t)
	})

	t.Run("skip policy reports conflicting doctors without failing", func(t *testing.T) {
		uc, scheduleRepo, doctorRepo, shiftRepo, userRepo, notificationUC := newTestScheduleUsecase(constvars.ScheduleConflictPolicySkip)

		shiftRepo.On("FindByID", mock.Anything, "shift-1").Return(shift, nil)
		doctorRepo.On("FindByID", mock.Anything, mock.Anything).Return(doctor, nil)
		scheduleRepo.On("CreateAssignments", mock.Anything, mock.Anything, true).
			Return(1, []models.ShiftAssignment{{DoctorID: "doctor-2", ShiftID: "shift-1"}}, nil)
		userRepo.On("FindUserIDsByDoctorIDs", mock.Anything, mock.Anything).Return([]string{"user-1"}, nil)
		notificationUC.On("SendNotification", mock.Anything, mock.Anything).
			Return(&responses.SendNotification{NotificationID: "n-1", ReceiverCount: 1}, nil)

		result, err := uc.CreateSchedule(context.Background(), &requests.CreateSchedule{
			EffectiveFrom: "2025-03-10",
			Shifts: []requests.ShiftDoctors{
				{ShiftID: "shift-1", DoctorIDs: []string{"doctor-1", "doctor-2"}},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.CreatedCount)
		assert.Len(t, result.Skipped, 1)
		assert.Equal(t, "doctor-2", result.Skipped[0].DoctorID)
		assert.Equal(t, constvars.ErrClientScheduleConflict, result.Skipped[0].Reason)
	})

	t.Run("reject policy propagates the conflict error", func(t *testing.T) {
		uc, scheduleRepo, doctorRepo, shiftRepo, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		shiftRepo.On("FindByID", mock.Anything, "shift-1").Return(shift, nil)
		doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(doctor, nil)
		scheduleRepo.On("CreateAssignments", mock.Anything, mock.Anything, false).
			Return(0, []models.ShiftAssignment{}, exceptions.ErrScheduleConflict(nil))

		_, err := uc.CreateSchedule(context.Background(), &requests.CreateSchedule{
			EffectiveFrom: "2025-03-10",
			Shifts: []requests.ShiftDoctors{
				{ShiftID: "shift-1", DoctorIDs: []string{"doctor-1"}},
			},
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("notification failure does not fail the creation", func(t *testing.T) {
		uc, scheduleRepo, doctorRepo, shiftRepo, userRepo, notificationUC := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		shiftRepo.On("FindByID", mock.Anything, "shift-1").Return(shift, nil)
		doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(doctor, nil)
		scheduleRepo.On("CreateAssignments", mock.Anything, mock.Anything, false).
			Return(1, []models.ShiftAssignment{}, nil)
		userRepo.On("FindUserIDsByDoctorIDs", mock.Anything, mock.Anything).Return([]string{"user-1"}, nil)
		notificationUC.On("SendNotification", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrNotificationNoReceiver(nil))

		result, err := uc.CreateSchedule(context.Background(), &requests.CreateSchedule{
			EffectiveFrom: "2025-03-10",
			Shifts: []requests.ShiftDoctors{
				{ShiftID: "shift-1", DoctorIDs: []string{"doctor-1"}},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.CreatedCount)
	})

	t.Run("end date before start date is rejected", func(t *testing.T) {
		uc, _, _, _, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		_, err := uc.CreateSchedule(context.Background(), &requests.CreateSchedule{
			EffectiveFrom: "2025-03-20",
			EffectiveTo:   "2025-03-10",
			Shifts: []requests.ShiftDoctors{
				{ShiftID: "shift-1", DoctorIDs: []string{"doctor-1"}},
			},
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestUpdateScheduleByDate(t *testing.T) {
	t.Run("single date reconciles the degenerate range", func(t *testing.T) {
		uc, scheduleRepo, _, shiftRepo, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		shiftRepo.On("FindByID", mock.Anything, "shift-1").Return(&models.Shift{ID: "shift-1"}, nil)
		scheduleRepo.On("ReconcileRange", mock.Anything, "shift-1",
			mock.MatchedBy(func(from time.Time) bool { return from.Day() == 15 }),
			mock.MatchedBy(func(to *time.Time) bool { return to != nil && to.Day() == 15 }),
			(*time.Time)(nil),
			[]string{"doctor-3"}, []string{"doctor-4"},
		).Return(nil)

		err := uc.UpdateScheduleByDate(context.Background(), &requests.UpdateScheduleByDate{
			ShiftID:         "shift-1",
			Date:            "2025-03-15",
			AddDoctorIDs:    []string{"doctor-3"},
			RemoveDoctorIDs: []string{"doctor-4"},
		})

		assert.NoError(t, err)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("unknown shift is rejected", func(t *testing.T) {
		uc, _, _, shiftRepo, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		shiftRepo.On("FindByID", mock.Anything, "shift-x").Return(nil, nil)

		err := uc.UpdateScheduleByDate(context.Background(), &requests.UpdateScheduleByDate{
			ShiftID: "shift-x",
			Date:    "2025-03-15",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestUpdateScheduleByID(t *testing.T) {
	existingTo := time.Date(2025, 3, 20, 0, 0, 0, 0, time.Local)
	existing := models.ShiftAssignment{
		ID:            "assignment-1",
		DoctorID:      "doctor-1",
		ShiftID:       "shift-1",
		EffectiveFrom: time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		EffectiveTo:   &existingTo,
		Status:        models.AssignmentActive,
	}

	t.Run("conflict check excludes the assignment itself", func(t *testing.T) {
		uc, scheduleRepo, _, _, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		row := existing
		scheduleRepo.On("FindByID", mock.Anything, "assignment-1").Return(&row, nil)
		scheduleRepo.On("HasConflict", mock.Anything, "doctor-1", "shift-1", mock.Anything, mock.Anything, "assignment-1").
			Return(false, nil)
		scheduleRepo.On("UpdateByID", mock.Anything, mock.Anything).Return(nil)

		newTo := "2025-03-25"
		err := uc.UpdateScheduleByID(context.Background(), "assignment-1", &requests.UpdateScheduleByID{
			EffectiveTo: &newTo,
		})

		assert.NoError(t, err)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("cancelling skips the conflict check", func(t *testing.T) {
		uc, scheduleRepo, _, _, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		row := existing
		scheduleRepo.On("FindByID", mock.Anything, "assignment-1").Return(&row, nil)
		scheduleRepo.On("UpdateByID", mock.Anything, mock.MatchedBy(func(a *models.ShiftAssignment) bool {
			return a.Status == models.AssignmentCancelled
		})).Return(nil)

		status := "cancelled"
		err := uc.UpdateScheduleByID(context.Background(), "assignment-1", &requests.UpdateScheduleByID{
			Status: &status,
		})

		assert.NoError(t, err)
		scheduleRepo.AssertNotCalled(t, "HasConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing assignment yields not found", func(t *testing.T) {
		uc, scheduleRepo, _, _, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		scheduleRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		err := uc.UpdateScheduleByID(context.Background(), "missing", &requests.UpdateScheduleByID{})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestCreateShift(t *testing.T) {
	t.Run("persists a shift with a valid time window", func(t *testing.T) {
		uc, _, _, shiftRepo, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		shiftRepo.On("Insert", mock.Anything, mock.MatchedBy(func(shift *models.Shift) bool {
			return shift.Name == "Night" && shift.StartTime == "18:00" && shift.EndTime == "23:00"
		})).Return(nil)

		shift, err := uc.CreateShift(context.Background(), &requests.CreateShift{
			Name:      "Night",
			StartTime: "18:00",
			EndTime:   "23:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Night", shift.Name)
		shiftRepo.AssertExpectations(t)
	})

	t.Run("rejects an end time at or before the start time", func(t *testing.T) {
		uc, _, _, shiftRepo, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		shift, err := uc.CreateShift(context.Background(), &requests.CreateShift{
			Name:      "Backwards",
			StartTime: "14:00",
			EndTime:   "08:00",
		})

		assert.Nil(t, shift)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidShiftTimes, customErr.ClientMessage)
		shiftRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed time of day", func(t *testing.T) {
		uc, _, _, _, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		_, err := uc.CreateShift(context.Background(), &requests.CreateShift{
			Name:      "Odd",
			StartTime: "25:99",
			EndTime:   "26:00",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestGetDoctors(t *testing.T) {
	t.Run("lists active doctors", func(t *testing.T) {
		uc, _, doctorRepo, _, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		roomID := "room-7"
		doctorRepo.On("FindActive", mock.Anything).Return([]models.Doctor{
			{ID: "doctor-1", FullName: "dr. Budi", Speciality: "Cardiology", RoomID: &roomID, IsActive: true},
			{ID: "doctor-2", FullName: "dr. Sari", Speciality: "Dermatology", IsActive: true},
		}, nil)

		doctors, err := uc.GetDoctors(context.Background())

		assert.NoError(t, err)
		assert.Len(t, doctors, 2)
		assert.Equal(t, "dr. Budi", doctors[0].FullName)
		assert.Equal(t, &roomID, doctors[0].RoomID)
		assert.Nil(t, doctors[1].RoomID)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		uc, _, doctorRepo, _, _, _ := newTestScheduleUsecase(constvars.ScheduleConflictPolicyReject)

		doctorRepo.On("FindActive", mock.Anything).Return(nil, assert.AnError)

		doctors, err := uc.GetDoctors(context.Background())

		assert.Nil(t, doctors)
		assert.Error(t, err)
	})
}
