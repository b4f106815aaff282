package requests

// ShiftDoctors pairs one shift slot with the doctors to be assigned to it.
type ShiftDoctors struct {
	ShiftID   string   `json:"shift_id" validate:"required,uuid"`
	DoctorIDs []string `json:"doctor_ids" validate:"required,min=1,dive,uuid"`
}

// CreateShift registers a new named shift slot with its daily time window.
type CreateShift struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartTime string `json:"start_time" validate:"required,time_of_day"`
	EndTime   string `json:"end_time" validate:"required,time_of_day"`
}

type CreateSchedule struct {
	EffectiveFrom string         `json:"effective_from" validate:"required,date"`
	EffectiveTo   string         `json:"effective_to" validate:"omitempty,date"`
	Shifts        []ShiftDoctors `json:"shifts" validate:"required,min=1,dive"`
}

// UpdateScheduleByDate adds/removes doctors for one calendar date and shift.
type UpdateScheduleByDate struct {
	ShiftID         string   `json:"shift_id" validate:"required,uuid"`
	Date            string   `json:"date" validate:"required,date"`
	AddDoctorIDs    []string `json:"add_doctor_ids" validate:"omitempty,dive,uuid"`
	RemoveDoctorIDs []string `json:"remove_doctor_ids" validate:"omitempty,dive,uuid"`
}

// UpdateScheduleByID mutates a single assignment row.
type UpdateScheduleByID struct {
	DoctorID      *string `json:"doctor_id" validate:"omitempty,uuid"`
	ShiftID       *string `json:"shift_id" validate:"omitempty,uuid"`
	EffectiveFrom *string `json:"effective_from" validate:"omitempty,date"`
	EffectiveTo   *string `json:"effective_to" validate:"omitempty,date"`
	Status        *string `json:"status" validate:"omitempty,oneof=active cancelled completed"`
}

// UpdateScheduleRange reconciles every assignment of a shift whose range
// matches [from_date, to_date] exactly.
type UpdateScheduleRange struct {
	ShiftID         string   `json:"shift_id" validate:"required,uuid"`
	FromDate        string   `json:"from_date" validate:"required,date"`
	ToDate          string   `json:"to_date" validate:"required,date"`
	NewToDate       string   `json:"new_to_date" validate:"omitempty,date"`
	AddDoctorIDs    []string `json:"add_doctor_ids" validate:"omitempty,dive,uuid"`
	RemoveDoctorIDs []string `json:"remove_doctor_ids" validate:"omitempty,dive,uuid"`
}
