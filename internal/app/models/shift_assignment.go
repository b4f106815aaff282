package models

import (
	"time"
)

type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCancelled AssignmentStatus = "cancelled"
	AssignmentCompleted AssignmentStatus = "completed"
)

// ShiftAssignment is one doctor's scheduled presence for one shift type over
// a date range. EffectiveTo == nil means the assignment is open-ended.
type ShiftAssignment struct {
	ID            string           `json:"id"`
	DoctorID      string           `json:"doctor_id"`
	ShiftID       string           `json:"shift_id"`
	EffectiveFrom time.Time        `json:"effective_from"`
	EffectiveTo   *time.Time       `json:"effective_to,omitempty"`
	Status        AssignmentStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ConflictsWith reports whether the assignment overlaps the proposed
// [rangeStart, rangeEnd] for the same doctor and the same shift slot.
// Cancelled assignments never conflict. Two assignments of one doctor in
// different shift slots are allowed to overlap: the rule is same-shift
// uniqueness, not doctor double-booking.
func (a *ShiftAssignment) ConflictsWith(doctorID, shiftID string, rangeStart, rangeEnd time.Time) bool {
	if a.Status == AssignmentCancelled {
		return false
	}
	if a.DoctorID != doctorID || a.ShiftID != shiftID {
		return false
	}
	if a.EffectiveFrom.After(rangeEnd) {
		return false
	}
	// An open-ended assignment extends to positive infinity.
	if a.EffectiveTo == nil {
		return true
	}
	return !a.EffectiveTo.Before(rangeStart)
}
