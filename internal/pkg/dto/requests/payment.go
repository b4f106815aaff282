package requests

type PaymentItem struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
	Price    float64 `json:"price" validate:"required,gte=0"`
}

type CreatePayment struct {
	MedicalRecordID string        `json:"medical_record_id" validate:"required,uuid"`
	Amount          float64       `json:"amount" validate:"required,gt=0"`
	Description     string        `json:"description" validate:"required"`
	Items           []PaymentItem `json:"items" validate:"omitempty,dive"`
}

// PaymentCallback is the inbound webhook body from the gateway.
type PaymentCallback struct {
	OrderCode string `json:"order_code" validate:"required"`
	Status    string `json:"status" validate:"required"`
}
