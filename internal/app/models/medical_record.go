package models

import (
	"time"
)

type MedicalRecord struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patient_id"`
	DoctorID      string    `json:"doctor_id"`
	AppointmentID *string   `json:"appointment_id,omitempty"`
	Diagnosis     string    `json:"diagnosis"`
	Prescription  string    `json:"prescription,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MedicalRecordAttachment points at an object stored in the attachment
// bucket; DownloadURL is only populated on read through a presigned link.
type MedicalRecordAttachment struct {
	ID              string    `json:"id"`
	MedicalRecordID string    `json:"medical_record_id"`
	ObjectName      string    `json:"object_name"`
	FileName        string    `json:"file_name"`
	ContentType     string    `json:"content_type"`
	SizeBytes       int64     `json:"size_bytes"`
	DownloadURL     string    `json:"download_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
