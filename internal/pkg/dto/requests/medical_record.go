package requests

type CreateMedicalRecord struct {
	PatientID     string  `json:"patient_id" validate:"required,uuid"`
	DoctorID      string  `json:"doctor_id" validate:"required,uuid"`
	AppointmentID string  `json:"appointment_id" validate:"omitempty,uuid"`
	Diagnosis     string  `json:"diagnosis" validate:"required"`
	Prescription  string  `json:"prescription" validate:"omitempty"`
	Notes         string  `json:"notes" validate:"omitempty"`
	TotalAmount   float64 `json:"total_amount" validate:"gte=0"`
}

type UpdateMedicalRecord struct {
	Diagnosis    *string  `json:"diagnosis" validate:"omitempty"`
	Prescription *string  `json:"prescription" validate:"omitempty"`
	Notes        *string  `json:"notes" validate:"omitempty"`
	TotalAmount  *float64 `json:"total_amount" validate:"omitempty,gte=0"`
}
