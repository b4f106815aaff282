package routers

import (
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.PaymentController) {
	router.With(m.Authenticate).Post("/", c.CreatePayment)
	router.With(m.Authenticate).Get("/medical-records/{medicalRecordID}/status", c.GetPaymentStatus)
}

// attachWebhookRoutes carries no auth middleware; the gateway calls in
// anonymously.
func attachWebhookRoutes(router chi.Router, c *controllers.WebhookController) {
	router.Post("/payment", c.PaymentCallback)
}
