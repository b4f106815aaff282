package routers

import (
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.MedicalRecordController) {
	router.With(m.Authenticate).Post("/", c.CreateMedicalRecord)
	router.With(m.Authenticate).Get("/{recordID}", c.GetMedicalRecord)
	router.With(m.Authenticate).Get("/patients/{patientID}", c.GetPatientMedicalRecords)
	router.With(m.Authenticate).Put("/{recordID}", c.UpdateMedicalRecord)
	router.With(m.Authenticate).Delete("/{recordID}", c.DeleteMedicalRecord)
	router.With(m.Authenticate).Post("/{recordID}/attachments", c.UploadAttachment)
	router.With(m.Authenticate).Get("/{recordID}/attachments", c.GetAttachments)
}
