package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	// CreateCheckoutLink requests a hosted checkout page for the order code.
	// The description is truncated to the gateway limit before signing.
	CreateCheckoutLink(ctx context.Context, orderCode string, amount int64, description string, items []models.PaymentItem) (*responses.GatewayLink, error)

	// GetCheckoutLink reports the gateway's current view of the link,
	// including whether it is still active.
	GetCheckoutLink(ctx context.Context, orderCode string) (*responses.GatewayLink, error)
}
