package contracts

import (
	"context"
	"time"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindUpcomingByPatient(ctx context.Context, patientID string, from time.Time, limit, offset int) ([]models.Appointment, int, error)
	FindOnDate(ctx context.Context, date time.Time) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) error
	GetUpcomingAppointments(ctx context.Context, patientID string, page, pageSize int) ([]models.Appointment, *responses.Pagination, error)
}
