package contracts

import (
	"context"
	"time"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error

	// FindLatestByMedicalRecord returns nil without error when the record has
	// no payment attempts yet.
	FindLatestByMedicalRecord(ctx context.Context, medicalRecordID string) (*models.Payment, error)

	// FindByOrderCode returns nil without error for unknown order codes;
	// callback handling depends on that.
	FindByOrderCode(ctx context.Context, orderCode string) (*models.Payment, error)

	OrderCodeExists(ctx context.Context, orderCode string) (bool, error)
	UpdateStatus(ctx context.Context, paymentID string, status models.PaymentStatus, paymentDate *time.Time) error
}

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.CreatePayment, error)
	HandlePaymentCallback(ctx context.Context, request *requests.PaymentCallback) error
	GetPaymentStatus(ctx context.Context, medicalRecordID string) (*responses.PaymentStatus, error)
}
