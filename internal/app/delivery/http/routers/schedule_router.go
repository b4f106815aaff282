package routers

import (
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.ScheduleController) {
	router.With(m.Authenticate).Post("/", c.CreateSchedule)
	router.With(m.Authenticate).Put("/date", c.UpdateScheduleByDate)
	router.With(m.Authenticate).Put("/range", c.UpdateScheduleRange)
	router.With(m.Authenticate).Put("/{assignmentID}", c.UpdateScheduleByID)
	router.With(m.Authenticate).Post("/shifts", c.CreateShift)
	router.With(m.Authenticate).Get("/daily", c.GetDailySchedule)
	router.With(m.Authenticate).Get("/doctors", c.GetDoctors)
	router.With(m.Authenticate).Get("/doctors/{doctorID}", c.GetDoctorAssignments)
}
