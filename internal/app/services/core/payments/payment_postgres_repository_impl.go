package payments

import (
	"context"
	"database/sql"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"

	"github.com/google/uuid"
)

type paymentPostgresRepository struct {
	DB *sql.DB
}

func NewPaymentPostgresRepository(db *sql.DB) contracts.PaymentRepository {
	return &paymentPostgresRepository{
		DB: db,
	}
}

func (repo *paymentPostgresRepository) Insert(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	_, err := repo.DB.ExecContext(ctx, queries.InsertPayment,
		payment.ID,
		payment.MedicalRecordID,
		payment.Amount,
		payment.Status,
		payment.OrderCode,
		payment.CheckoutURL,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *paymentPostgresRepository) FindLatestByMedicalRecord(ctx context.Context, medicalRecordID string) (*models.Payment, error) {
	return repo.scanPayment(repo.DB.QueryRowContext(ctx, queries.GetLatestPaymentByMedicalRecord, medicalRecordID))
}

func (repo *paymentPostgresRepository) FindByOrderCode(ctx context.Context, orderCode string) (*models.Payment, error) {
	return repo.scanPayment(repo.DB.QueryRowContext(ctx, queries.GetPaymentByOrderCode, orderCode))
}

func (repo *paymentPostgresRepository) OrderCodeExists(ctx context.Context, orderCode string) (bool, error) {
	var count int
	if err := repo.DB.QueryRowContext(ctx, queries.CountPaymentsByOrderCode, orderCode).Scan(&count); err != nil {
		return false, exceptions.ErrPostgresDBFindData(err)
	}
	return count > 0, nil
}

func (repo *paymentPostgresRepository) UpdateStatus(ctx context.Context, paymentID string, status models.PaymentStatus, paymentDate *time.Time) error {
	var date sql.NullTime
	if paymentDate != nil {
		date = sql.NullTime{Time: *paymentDate, Valid: true}
	}
	result, err := repo.DB.ExecContext(ctx, queries.UpdatePaymentStatus, status, date, paymentID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrPaymentNotFound(sql.ErrNoRows)
	}
	return nil
}

func (repo *paymentPostgresRepository) scanPayment(row *sql.Row) (*models.Payment, error) {
	var payment models.Payment
	var paymentDate sql.NullTime
	err := row.Scan(
		&payment.ID,
		&payment.MedicalRecordID,
		&payment.Amount,
		&payment.Status,
		&payment.OrderCode,
		&payment.CheckoutURL,
		&paymentDate,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	if paymentDate.Valid {
		payment.PaymentDate = &paymentDate.Time
	}
	return &payment, nil
}
