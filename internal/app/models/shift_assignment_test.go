package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func dayPtr(value string) *time.Time {
	parsed := day(value)
	return &parsed
}

func TestShiftAssignmentConflictsWith(t *testing.T) {
	base := ShiftAssignment{
		ID:            "assignment-1",
		DoctorID:      "doctor-1",
		ShiftID:       "shift-1",
		EffectiveFrom: day("2025-03-10"),
		EffectiveTo:   dayPtr("2025-03-20"),
		Status:        AssignmentActive,
	}

	t.Run("overlapping range conflicts", func(t *testing.T) {
		assert.True(t, base.ConflictsWith("doctor-1", "shift-1", day("2025-03-15"), day("2025-03-25")))
		assert.True(t, base.ConflictsWith("doctor-1", "shift-1", day("2025-03-01"), day("2025-03-10")))
		assert.True(t, base.ConflictsWith("doctor-1", "shift-1", day("2025-03-20"), day("2025-03-30")))
	})

	t.Run("disjoint range does not conflict", func(t *testing.T) {
		assert.False(t, base.ConflictsWith("doctor-1", "shift-1", day("2025-03-21"), day("2025-03-31")))
		assert.False(t, base.ConflictsWith("doctor-1", "shift-1", day("2025-03-01"), day("2025-03-09")))
	})

	t.Run("open-ended assignment conflicts with any later range", func(t *testing.T) {
		openEnded := base
		openEnded.EffectiveTo = nil

		assert.True(t, openEnded.ConflictsWith("doctor-1", "shift-1", day("2030-01-01"), day("2030-01-31")))
		assert.False(t, openEnded.ConflictsWith("doctor-1", "shift-1", day("2025-03-01"), day("2025-03-09")))
	})

	t.Run("different doctor or shift never conflicts", func(t *testing.T) {
		assert.False(t, base.ConflictsWith("doctor-2", "shift-1", day("2025-03-15"), day("2025-03-16")))
		assert.False(t, base.ConflictsWith("doctor-1", "shift-2", day("2025-03-15"), day("2025-03-16")))
	})

	t.Run("cancelled assignment never conflicts", func(t *testing.T) {
		cancelled := base
		cancelled.Status = AssignmentCancelled

		assert.False(t, cancelled.ConflictsWith("doctor-1", "shift-1", day("2025-03-15"), day("2025-03-16")))
	})
}
