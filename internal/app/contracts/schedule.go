package contracts

import (
	"context"
	"time"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
)

type ScheduleRepository interface {
	// HasConflict reports whether the doctor already holds a non-cancelled
	// assignment in the same shift slot overlapping [rangeStart, rangeEnd].
	// A nil rangeEnd means the proposed range is open-ended. A non-empty
	// excludeID leaves that assignment out of the check so a row can be
	// re-ranged without conflicting with itself.
	HasConflict(ctx context.Context, doctorID, shiftID string, rangeStart time.Time, rangeEnd *time.Time, excludeID string) (bool, error)

	// CreateAssignments writes the batch in a single transaction, re-checking
	// the conflict rule per row inside the transaction. With skipConflicts
	// false the first conflict aborts the whole batch; with it true
	// conflicting rows are returned as skipped and the rest commit.
	CreateAssignments(ctx context.Context, assignments []models.ShiftAssignment, skipConflicts bool) (created int, skipped []models.ShiftAssignment, err error)

	FindByID(ctx context.Context, id string) (*models.ShiftAssignment, error)
	FindByShiftAndExactRange(ctx context.Context, shiftID string, fromDate time.Time, toDate *time.Time) ([]models.ShiftAssignment, error)
	FindActiveOnDate(ctx context.Context, date time.Time) ([]models.ShiftAssignment, error)
	FindByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]models.ShiftAssignment, int, error)

	// ReconcileRange applies removals, additions and the optional range
	// extension to the exact-match set as one transaction.
	ReconcileRange(ctx context.Context, shiftID string, fromDate time.Time, toDate, newToDate *time.Time, addDoctorIDs, removeDoctorIDs []string) error

	UpdateByID(ctx context.Context, assignment *models.ShiftAssignment) error
}

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.CreateSchedule, error)
	UpdateScheduleByDate(ctx context.Context, request *requests.UpdateScheduleByDate) error
	UpdateScheduleByID(ctx context.Context, assignmentID string, request *requests.UpdateScheduleByID) error
	UpdateScheduleRange(ctx context.Context, request *requests.UpdateScheduleRange) error
	GetDailySchedule(ctx context.Context, date string) (*responses.DailySchedule, error)
	GetDoctorAssignments(ctx context.Context, doctorID string, page, pageSize int) ([]responses.ShiftAssignment, *responses.Pagination, error)
	CreateShift(ctx context.Context, request *requests.CreateShift) (*models.Shift, error)
	GetDoctors(ctx context.Context) ([]responses.Doctor, error)
}
