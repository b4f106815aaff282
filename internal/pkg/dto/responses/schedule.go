package responses

// CreateSchedule reports the outcome of a bulk schedule creation. Skipped is
// only populated under the skip conflict policy.
type CreateSchedule struct {
	CreatedCount int               `json:"created_count"`
	Skipped      []SkippedDoctor   `json:"skipped,omitempty"`
}

type SkippedDoctor struct {
	DoctorID string `json:"doctor_id"`
	ShiftID  string `json:"shift_id"`
	Reason   string `json:"reason"`
}

type ShiftAssignment struct {
	ID            string  `json:"id"`
	DoctorID      string  `json:"doctor_id"`
	DoctorName    string  `json:"doctor_name,omitempty"`
	ShiftID       string  `json:"shift_id"`
	ShiftName     string  `json:"shift_name,omitempty"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	Status        string  `json:"status"`
}

// DailySchedule groups the assignments active on one calendar date by shift.
type DailySchedule struct {
	Date   string          `json:"date"`
	Shifts []ShiftSchedule `json:"shifts"`
}

type Doctor struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Speciality string  `json:"speciality"`
	RoomID     *string `json:"room_id,omitempty"`
}

type ShiftSchedule struct {
	ShiftID   string            `json:"shift_id"`
	ShiftName string            `json:"shift_name"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Doctors   []ShiftAssignment `json:"doctors"`
}
