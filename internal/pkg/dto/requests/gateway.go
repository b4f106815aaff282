package requests

// GatewayCreateLink is the outbound payload for the payment gateway's
// create-checkout-link endpoint. Signature covers amount, cancel URL,
// description, order code and return URL, HMAC-SHA256 with the checksum key.
type GatewayCreateLink struct {
	OrderCode   string            `json:"orderCode"`
	Amount      int64             `json:"amount"`
	Description string            `json:"description"`
	Items       []GatewayLinkItem `json:"items,omitempty"`
	CancelURL   string            `json:"cancelUrl"`
	ReturnURL   string            `json:"returnUrl"`
	Signature   string            `json:"signature"`
}

type GatewayLinkItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}
