package routers

import (
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AppointmentController) {
	router.With(m.Authenticate).Post("/", c.BookAppointment)
	router.With(m.Authenticate).Patch("/{appointmentID}/status", c.UpdateAppointmentStatus)
	router.With(m.Authenticate).Get("/patients/{patientID}/upcoming", c.GetUpcomingAppointments)
}
