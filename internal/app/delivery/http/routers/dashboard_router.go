package routers

import (
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.DashboardController) {
	router.With(m.Authenticate).Get("/totals", c.GetTotals)
	router.With(m.Authenticate).Get("/monthly", c.GetMonthly)
}
