package schedules

import (
	"context"
	"database/sql"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"

	"github.com/google/uuid"
)

type schedulePostgresRepository struct {
	DB *sql.DB
}

func NewSchedulePostgresRepository(db *sql.DB) contracts.ScheduleRepository {
	return &schedulePostgresRepository{
		DB: db,
	}
}

func (repo *schedulePostgresRepository) HasConflict(ctx context.Context, doctorID, shiftID string, rangeStart time.Time, rangeEnd *time.Time, excludeID string) (bool, error) {
	return hasConflict(ctx, repo.DB, doctorID, shiftID, rangeStart, rangeEnd, excludeID)
}

// querier is satisfied by both *sql.DB and *sql.Tx so the conflict check can
// run inside the batch transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func hasConflict(ctx context.Context, q querier, doctorID, shiftID string, rangeStart time.Time, rangeEnd *time.Time, excludeID string) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, queries.CountConflictingAssignments,
		doctorID,
		shiftID,
		rangeStart,
		nullableTime(rangeEnd),
		excludeID,
	).Scan(&count)
	if err != nil {
		return false, exceptions.ErrPostgresDBFindData(err)
	}
	return count > 0, nil
}

func (repo *schedulePostgresRepository) CreateAssignments(ctx context.Context, assignments []models.ShiftAssignment, skipConflicts bool) (int, []models.ShiftAssignment, error) {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	created := 0
	var skipped []models.ShiftAssignment
	for i := range assignments {
		assignment := &assignments[i]

		conflicted, err := hasConflict(ctx, tx, assignment.DoctorID, assignment.ShiftID, assignment.EffectiveFrom, assignment.EffectiveTo, "")
		if err != nil {
			return 0, nil, err
		}
		if conflicted {
			if skipConflicts {
				skipped = append(skipped, *assignment)
				continue
			}
			return 0, nil, exceptions.ErrScheduleConflict(nil)
		}

		if assignment.ID == "" {
			assignment.ID = uuid.NewString()
		}
		_, err = tx.ExecContext(ctx, queries.InsertShiftAssignment,
			assignment.ID,
			assignment.DoctorID,
			assignment.ShiftID,
			assignment.EffectiveFrom,
			nullableTime(assignment.EffectiveTo),
			assignment.Status,
		)
		if err != nil {
			return 0, nil, exceptions.ErrPostgresDBInsertData(err)
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, exceptions.ErrPostgresDBCommitTx(err)
	}
	return created, skipped, nil
}

func (repo *schedulePostgresRepository) FindByID(ctx context.Context, id string) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	var effectiveTo sql.NullTime
	err := repo.DB.QueryRowContext(ctx, queries.GetShiftAssignmentByID, id).Scan(
		&assignment.ID,
		&assignment.DoctorID,
		&assignment.ShiftID,
		&assignment.EffectiveFrom,
		&effectiveTo,
		&assignment.Status,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	if effectiveTo.Valid {
		assignment.EffectiveTo = &effectiveTo.Time
	}
	return &assignment, nil
}

func (repo *schedulePostgresRepository) FindByShiftAndExactRange(ctx context.Context, shiftID string, fromDate time.Time, toDate *time.Time) ([]models.ShiftAssignment, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAssignmentsByShiftAndExactRange, shiftID, fromDate, nullableTime(toDate))
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanAssignments(rows)
}

func (repo *schedulePostgresRepository) FindActiveOnDate(ctx context.Context, date time.Time) ([]models.ShiftAssignment, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAssignmentsActiveOnDate, date)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanAssignments(rows)
}

func (repo *schedulePostgresRepository) FindByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]models.ShiftAssignment, int, error) {
	var total int
	if err := repo.DB.QueryRowContext(ctx, queries.CountAssignmentsByDoctor, doctorID).Scan(&total); err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetAssignmentsByDoctor, doctorID, limit, offset)
	if err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	assignments, err := scanAssignments(rows)
	if err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

func (repo *schedulePostgresRepository) ReconcileRange(ctx context.Context, shiftID string, fromDate time.Time, toDate, newToDate *time.Time, addDoctorIDs, removeDoctorIDs []string) error {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, queries.GetAssignmentsByShiftAndExactRange, shiftID, fromDate, nullableTime(toDate))
	if err != nil {
		return exceptions.ErrPostgresDBFindData(err)
	}
	existing, err := scanAssignments(rows)
	rows.Close()
	if err != nil {
		return err
	}

	removals := make(map[string]bool, len(removeDoctorIDs))
	for _, doctorID := range removeDoctorIDs {
		removals[doctorID] = true
	}

	effectiveTo := toDate
	if newToDate != nil {
		effectiveTo = newToDate
	}

	for i := range existing {
		assignment := &existing[i]
		if removals[assignment.DoctorID] {
			if _, err := tx.ExecContext(ctx, queries.DeleteShiftAssignment, assignment.ID); err != nil {
				return exceptions.ErrPostgresDBDeleteData(err)
			}
			continue
		}
		if newToDate != nil {
			if _, err := tx.ExecContext(ctx, queries.UpdateShiftAssignmentEffectiveTo, nullableTime(newToDate), assignment.ID); err != nil {
				return exceptions.ErrPostgresDBUpdateData(err)
			}
		}
	}

	for _, doctorID := range addDoctorIDs {
		conflicted, err := hasConflict(ctx, tx, doctorID, shiftID, fromDate, effectiveTo, "")
		if err != nil {
			return err
		}
		if conflicted {
			return exceptions.ErrScheduleConflict(nil)
		}
		_, err = tx.ExecContext(ctx, queries.InsertShiftAssignment,
			uuid.NewString(),
			doctorID,
			shiftID,
			fromDate,
			nullableTime(effectiveTo),
			models.AssignmentActive,
		)
		if err != nil {
			return exceptions.ErrPostgresDBInsertData(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBCommitTx(err)
	}
	return nil
}

func (repo *schedulePostgresRepository) UpdateByID(ctx context.Context, assignment *models.ShiftAssignment) error {
	result, err := repo.DB.ExecContext(ctx, queries.UpdateShiftAssignmentByID,
		assignment.DoctorID,
		assignment.ShiftID,
		assignment.EffectiveFrom,
		nullableTime(assignment.EffectiveTo),
		assignment.Status,
		assignment.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrAssignmentNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanAssignments(rows *sql.Rows) ([]models.ShiftAssignment, error) {
	var assignments []models.ShiftAssignment
	for rows.Next() {
		var model models.ShiftAssignment
		var effectiveTo sql.NullTime
		if err := rows.Scan(
			&model.ID,
			&model.DoctorID,
			&model.ShiftID,
			&model.EffectiveFrom,
			&effectiveTo,
			&model.Status,
			&model.CreatedAt,
			&model.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		if effectiveTo.Valid {
			model.EffectiveTo = &effectiveTo.Time
		}
		assignments = append(assignments, model)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return assignments, nil
}

func nullableTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
