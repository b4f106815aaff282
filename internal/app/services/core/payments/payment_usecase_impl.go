package payments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	PaymentRepository       contracts.PaymentRepository
	MedicalRecordRepository contracts.MedicalRecordRepository
	PatientRepository       contracts.PatientRepository
	PaymentGatewayService   contracts.PaymentGatewayService
	NotificationUsecase     contracts.NotificationUsecase
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	medicalRecordRepository contracts.MedicalRecordRepository,
	patientRepository contracts.PatientRepository,
	paymentGatewayService contracts.PaymentGatewayService,
	notificationUsecase contracts.NotificationUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentRepository:       paymentRepository,
			MedicalRecordRepository: medicalRecordRepository,
			PatientRepository:       patientRepository,
			PaymentGatewayService:   paymentGatewayService,
			NotificationUsecase:     notificationUsecase,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
	})
	return paymentUsecaseInstance
}

// bankAccount exposes the configured manual-transfer account, or nil when the
// deployment has none configured.
func (uc *paymentUsecase) bankAccount() *responses.BankAccount {
	gateway := uc.InternalConfig.PaymentGateway
	if gateway.BankAccountNumber == "" {
		return nil
	}
	return &responses.BankAccount{
		AccountName:   gateway.BankAccountName,
		AccountNumber: gateway.BankAccountNumber,
		BankName:      gateway.BankName,
	}
}

func (uc *paymentUsecase) CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.CreatePayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("medical_record_id", request.MedicalRecordID),
	)

	record, err := uc.MedicalRecordRepository.FindByID(ctx, request.MedicalRecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}

	latest, err := uc.PaymentRepository.FindLatestByMedicalRecord(ctx, request.MedicalRecordID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		switch latest.Status {
		case models.PaymentPaid:
			return nil, exceptions.ErrMedicalRecordAlreadyPaid(nil)
		case models.PaymentPending:
			// Reuse the pending attempt while its checkout link is still
			// alive; only a dead link warrants a fresh one.
			link, err := uc.PaymentGatewayService.GetCheckoutLink(ctx, latest.OrderCode)
			if err == nil && link.Status == string(constvars.GatewayLinkStatusActive) {
				return &responses.CreatePayment{
					PaymentID:   latest.ID,
					OrderCode:   latest.OrderCode,
					Amount:      latest.Amount,
					CheckoutURL: latest.CheckoutURL,
					BankAccount: uc.bankAccount(),
				}, nil
			}
		}
	}

	orderCode, err := uc.generateUniqueOrderCode(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.PaymentItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, models.PaymentItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	link, err := uc.PaymentGatewayService.CreateCheckoutLink(ctx, orderCode, int64(request.Amount), request.Description, items)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		MedicalRecordID: request.MedicalRecordID,
		Amount:          request.Amount,
		Status:          models.PaymentPending,
		OrderCode:       orderCode,
		CheckoutURL:     link.CheckoutURL,
	}
	if err := uc.PaymentRepository.Insert(ctx, payment); err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderCodeKey, orderCode),
	)
	return &responses.CreatePayment{
		PaymentID:   payment.ID,
		OrderCode:   orderCode,
		Amount:      payment.Amount,
		CheckoutURL: payment.CheckoutURL,
		BankAccount: uc.bankAccount(),
	}, nil
}

func (uc *paymentUsecase) generateUniqueOrderCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < constvars.OrderCodeGenerationMaxAttempts; attempt++ {
		orderCode, err := utils.GenerateOrderCode(time.Now())
		if err != nil {
			return "", exceptions.ErrOrderCodeExhausted(err)
		}
		exists, err := uc.PaymentRepository.OrderCodeExists(ctx, orderCode)
		if err != nil {
			return "", err
		}
		if !exists {
			return orderCode, nil
		}
	}
	return "", exceptions.ErrOrderCodeExhausted(nil)
}

func (uc *paymentUsecase) HandlePaymentCallback(ctx context.Context, request *requests.PaymentCallback) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandlePaymentCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderCodeKey, request.OrderCode),
		zap.String(constvars.LoggingPaymentStatusKey, request.Status),
	)

	payment, err := uc.PaymentRepository.FindByOrderCode(ctx, request.OrderCode)
	if err != nil {
		return err
	}
	// Gateways replay callbacks and occasionally send codes from other
	// merchants sharing the account; unknown codes are acknowledged without
	// any mutation.
	if payment == nil {
		uc.Log.Warn("paymentUsecase.HandlePaymentCallback unknown order code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderCodeKey, request.OrderCode),
		)
		return nil
	}
	// Paid is terminal: late cancellations or replays never demote it.
	if payment.Status == models.PaymentPaid {
		return nil
	}

	switch constvars.GatewayLinkStatus(request.Status) {
	case constvars.GatewayLinkStatusPaid:
		now := time.Now()
		if err := uc.PaymentRepository.UpdateStatus(ctx, payment.ID, models.PaymentPaid, &now); err != nil {
			return err
		}
		uc.notifyPaymentReceived(ctx, payment, now)
	case constvars.GatewayLinkStatusCancelled, constvars.GatewayLinkStatusExpired:
		if err := uc.PaymentRepository.UpdateStatus(ctx, payment.ID, models.PaymentCancelled, nil); err != nil {
			return err
		}
	default:
		uc.Log.Warn("paymentUsecase.HandlePaymentCallback unhandled status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentStatusKey, request.Status),
		)
	}
	return nil
}

// notifyPaymentReceived sends the receipt notification to the paying
// patient's user account. Failure is logged, never escalated.
func (uc *paymentUsecase) notifyPaymentReceived(ctx context.Context, payment *models.Payment, paidAt time.Time) {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, payment.MedicalRecordID)
	if err != nil || record == nil {
		return
	}
	patient, err := uc.PatientRepository.FindByID(ctx, record.PatientID)
	if err != nil || patient == nil || patient.UserID == nil {
		return
	}

	_, err = uc.NotificationUsecase.SendNotification(ctx, &requests.SendNotification{
		Title:         constvars.EmailPaymentReceiptSubject,
		Content:       "Your payment has been received. Thank you.",
		Type:          string(models.NotificationTypePayment),
		ReceiverIDs:   []string{*patient.UserID},
		EmailTemplate: constvars.EmailTemplatePaymentReceipt,
		EmailValues: map[string]string{
			"patient_name": patient.FullName,
			"order_code":   payment.OrderCode,
			"amount":       fmt.Sprintf("%.2f", payment.Amount),
			"paid_at":      paidAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		uc.Log.Warn("paymentUsecase.notifyPaymentReceived failed",
			zap.String(constvars.LoggingOrderCodeKey, payment.OrderCode),
			zap.Error(err),
		)
	}
}

func (uc *paymentUsecase) GetPaymentStatus(ctx context.Context, medicalRecordID string) (*responses.PaymentStatus, error) {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, medicalRecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}

	payment, err := uc.PaymentRepository.FindLatestByMedicalRecord(ctx, medicalRecordID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return &responses.PaymentStatus{Status: string(models.PaymentNone)}, nil
	}

	response := &responses.PaymentStatus{
		Status:    string(payment.Status),
		PaymentID: payment.ID,
	}
	if payment.Status == models.PaymentPending && payment.CheckoutURL != "" {
		checkoutURL := payment.CheckoutURL
		response.CheckoutURL = &checkoutURL
	}
	if payment.PaymentDate != nil {
		formatted := payment.PaymentDate.Format(time.RFC3339)
		response.PaymentDate = &formatted
	}
	return response, nil
}
