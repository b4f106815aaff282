package constvars

// GatewayLinkStatus is a typed checkout-link status reported by the payment
// gateway.
type GatewayLinkStatus string

const (
	GatewayLinkStatusActive    GatewayLinkStatus = "ACTIVE"
	GatewayLinkStatusPaid      GatewayLinkStatus = "PAID"
	GatewayLinkStatusCancelled GatewayLinkStatus = "CANCELLED"
	GatewayLinkStatusExpired   GatewayLinkStatus = "EXPIRED"
)

const (
	// The gateway rejects descriptions longer than this; callers truncate
	// before signing, otherwise the checksum never matches.
	GatewayDescriptionMaxLength = 25
)

const (
	GatewayCreateLinkPath = "/v2/payment-requests"
	GatewayGetLinkPath    = "/v2/payment-requests/%s"
)

const (
	GatewayHeaderClientID = "x-client-id"
	GatewayHeaderAPIKey   = "x-api-key"
	GatewayHeaderPartner  = "x-partner-code"
)
