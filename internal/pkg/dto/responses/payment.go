package responses

type CreatePayment struct {
	PaymentID   string       `json:"payment_id"`
	OrderCode   string       `json:"order_code"`
	Amount      float64      `json:"amount"`
	CheckoutURL string       `json:"checkout_url"`
	BankAccount *BankAccount `json:"bank_account,omitempty"`
}

// BankAccount is the manual-transfer fallback shown beside the checkout QR.
type BankAccount struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
}

type PaymentStatus struct {
	Status      string  `json:"status"`
	PaymentID   string  `json:"payment_id,omitempty"`
	CheckoutURL *string `json:"checkout_url,omitempty"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

// GatewayLink is the gateway's view of a checkout link.
type GatewayLink struct {
	OrderCode   string `json:"orderCode"`
	CheckoutURL string `json:"checkoutUrl"`
	Status      string `json:"status"`
}
