package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
)

// Reference entities consumed read-only by the scheduling and payment logic.

type DoctorRepository interface {
	FindByID(ctx context.Context, id string) (*models.Doctor, error)
	FindActive(ctx context.Context) ([]models.Doctor, error)
}

type PatientRepository interface {
	FindByID(ctx context.Context, id string) (*models.Patient, error)
}

type ShiftRepository interface {
	Insert(ctx context.Context, shift *models.Shift) error
	FindByID(ctx context.Context, id string) (*models.Shift, error)
	FindAll(ctx context.Context) ([]models.Shift, error)
}
