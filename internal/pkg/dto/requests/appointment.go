package requests

type BookAppointment struct {
	PatientID       string `json:"patient_id" validate:"required,uuid"`
	DoctorID        string `json:"doctor_id" validate:"required,uuid"`
	ShiftID         string `json:"shift_id" validate:"required,uuid"`
	AppointmentDate string `json:"appointment_date" validate:"required,date"`
	Reason          string `json:"reason" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled"`
}
