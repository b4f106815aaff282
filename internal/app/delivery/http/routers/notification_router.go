package routers

import (
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.NotificationController) {
	router.With(m.Authenticate).Post("/", c.SendNotification)
	router.With(m.Authenticate).Get("/", c.GetUserNotifications)
	router.With(m.Authenticate).Get("/unread-count", c.GetUnreadCount)
	router.With(m.Authenticate).Patch("/{notificationID}/read", c.MarkRead)
	router.With(m.Authenticate).Post("/read-all", c.MarkAllRead)
}
