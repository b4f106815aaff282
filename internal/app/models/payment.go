package models

import (
	"time"
)

type PaymentStatus string

const (
	// PaymentNone is never stored; it is the reported status of a medical
	// record that has no payment attempts yet.
	PaymentNone      PaymentStatus = "none"
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Payment is one checkout attempt for a medical record. A record may
// accumulate several attempts over time but at most one may ever be paid.
type Payment struct {
	ID              string        `json:"id"`
	MedicalRecordID string        `json:"medical_record_id"`
	Amount          float64       `json:"amount"`
	Status          PaymentStatus `json:"status"`
	OrderCode       string        `json:"order_code"`
	CheckoutURL     string        `json:"checkout_url"`
	PaymentDate     *time.Time    `json:"payment_date,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type PaymentItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
