package payments

import (
	"context"
	"testing"
	"time"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Insert(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindLatestByMedicalRecord(ctx context.Context, medicalRecordID string) (*models.Payment, error) {
	args := m.Called(ctx, medicalRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderCode(ctx context.Context, orderCode string) (*models.Payment, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) OrderCodeExists(ctx context.Context, orderCode string) (bool, error) {
	args := m.Called(ctx, orderCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, paymentID string, status models.PaymentStatus, paymentDate *time.Time) error {
	args := m.Called(ctx, paymentID, status, paymentDate)
	return args.Error(0)
}

type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) Insert(ctx context.Context, record *models.MedicalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) FindByID(ctx context.Context, id string) (*models.MedicalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindByPatient(ctx context.Context, patientID string, limit, offset int) ([]models.MedicalRecord, int, error) {
	args := m.Called(ctx, patientID, limit, offset)
	return args.Get(0).([]models.MedicalRecord), args.Int(1), args.Error(2)
}

func (m *MockMedicalRecordRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) InsertAttachment(ctx context.Context, attachment *models.MedicalRecordAttachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) FindAttachments(ctx context.Context, medicalRecordID string) ([]models.MedicalRecordAttachment, error) {
	args := m.Called(ctx, medicalRecordID)
	return args.Get(0).([]models.MedicalRecordAttachment), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

type MockPaymentGatewayService struct {
	mock.Mock
}

func (m *MockPaymentGatewayService) CreateCheckoutLink(ctx context.Context, orderCode string, amount int64, description string, items []models.PaymentItem) (*responses.GatewayLink, error) {
	args := m.Called(ctx, orderCode, amount, description, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.GatewayLink), args.Error(1)
}

func (m *MockPaymentGatewayService) GetCheckoutLink(ctx context.Context, orderCode string) (*responses.GatewayLink, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.GatewayLink), args.Error(1)
}

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) SendNotification(ctx context.Context, request *requests.SendNotification) (*responses.SendNotification, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SendNotification), args.Error(1)
}

func (m *MockNotificationUsecase) GetUserNotifications(ctx context.Context, userID string, page, pageSize int) ([]responses.UserNotification, *responses.Pagination, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]responses.UserNotification), args.Get(1).(*responses.Pagination), args.Error(2)
}

func (m *MockNotificationUsecase) GetUnreadCount(ctx context.Context, userID string) (*responses.UnreadCount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*responses.UnreadCount), args.Error(1)
}

func (m *MockNotificationUsecase) MarkRead(ctx context.Context, userID, notificationID string) (*responses.MarkRead, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Get(0).(*responses.MarkRead), args.Error(1)
}

func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestPaymentUsecase() (*paymentUsecase, *MockPaymentRepository, *MockMedicalRecordRepository, *MockPatientRepository, *MockPaymentGatewayService, *MockNotificationUsecase) {
	paymentRepo := new(MockPaymentRepository)
	recordRepo := new(MockMedicalRecordRepository)
	patientRepo := new(MockPatientRepository)
	gateway := new(MockPaymentGatewayService)
	notificationUC := new(MockNotificationUsecase)

	uc := &paymentUsecase{
		PaymentRepository:       paymentRepo,
		MedicalRecordRepository: recordRepo,
		PatientRepository:       patientRepo,
		PaymentGatewayService:   gateway,
		NotificationUsecase:     notificationUC,
		InternalConfig: &config.InternalConfig{
			PaymentGateway: config.PaymentGateway{
				BankAccountName:   "Klinik Sehat",
				BankAccountNumber: "1234567890",
				BankName:          "Bank Mandiri",
			},
		},
		Log: zap.NewNop(),
	}
	return uc, paymentRepo, recordRepo, patientRepo, gateway, notificationUC
}

func TestCreatePayment(t *testing.T) {
	record := &models.MedicalRecord{ID: "record-1", PatientID: "patient-1"}

	t.Run("creates a fresh payment attempt when none exists", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, gateway, _ := newTestPaymentUsecase()

		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").Return(nil, nil)
		paymentRepo.On("OrderCodeExists", mock.Anything, mock.Anything).Return(false, nil)
		gateway.On("CreateCheckoutLink", mock.Anything, mock.Anything, int64(150000), "Consultation fee", mock.Anything).
			Return(&responses.GatewayLink{CheckoutURL: "https://pay.example/abc", Status: string(constvars.GatewayLinkStatusActive)}, nil)
		paymentRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.PaymentPending && p.CheckoutURL == "https://pay.example/abc"
		})).Return(nil)

		result, err := uc.CreatePayment(context.Background(), &requests.CreatePayment{
			MedicalRecordID: "record-1",
			Amount:          150000,
			Description:     "Consultation fee",
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://pay.example/abc", result.CheckoutURL)
		assert.NotEmpty(t, result.OrderCode)
		if assert.NotNil(t, result.BankAccount) {
			assert.Equal(t, "Klinik Sehat", result.BankAccount.AccountName)
			assert.Equal(t, "1234567890", result.BankAccount.AccountNumber)
			assert.Equal(t, "Bank Mandiri", result.BankAccount.BankName)
		}
		paymentRepo.AssertExpectations(t)
	})

	t.Run("omits the bank account block when none is configured", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, gateway, _ := newTestPaymentUsecase()
		uc.InternalConfig = &config.InternalConfig{}

		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").Return(nil, nil)
		paymentRepo.On("OrderCodeExists", mock.Anything, mock.Anything).Return(false, nil)
		gateway.On("CreateCheckoutLink", mock.Anything, mock.Anything, int64(75000), "Follow-up fee", mock.Anything).
			Return(&responses.GatewayLink{CheckoutURL: "https://pay.example/def", Status: string(constvars.GatewayLinkStatusActive)}, nil)
		paymentRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.CreatePayment(context.Background(), &requests.CreatePayment{
			MedicalRecordID: "record-1",
			Amount:          75000,
			Description:     "Follow-up fee",
		})

		assert.NoError(t, err)
		assert.Nil(t, result.BankAccount)
	})

	t.Run("reuses a pending attempt while its link is still active", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, gateway, _ := newTestPaymentUsecase()

		pending := &models.Payment{
			ID:              "payment-1",
			MedicalRecordID: "record-1",
			Amount:          150000,
			Status:          models.PaymentPending,
			OrderCode:       "250310123456",
			CheckoutURL:     "https://pay.example/old",
		}
		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").Return(pending, nil)
		gateway.On("GetCheckoutLink", mock.Anything, "250310123456").
			Return(&responses.GatewayLink{OrderCode: "250310123456", Status: string(constvars.GatewayLinkStatusActive)}, nil)

		result, err := uc.CreatePayment(context.Background(), &requests.CreatePayment{
			MedicalRecordID: "record-1",
			Amount:          150000,
			Description:     "Consultation fee",
		})

		assert.NoError(t, err)
		assert.Equal(t, "payment-1", result.PaymentID)
		assert.Equal(t, "https://pay.example/old", result.CheckoutURL)
		assert.NotNil(t, result.BankAccount)
		gateway.AssertNotCalled(t, "CreateCheckoutLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		paymentRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("expired pending link yields a fresh attempt", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, gateway, _ := newTestPaymentUsecase()

		pending := &models.Payment{
			ID:        "payment-1",
			Status:    models.PaymentPending,
			OrderCode: "250310123456",
		}
		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").Return(pending, nil)
		gateway.On("GetCheckoutLink", mock.Anything, "250310123456").
			Return(&responses.GatewayLink{Status: string(constvars.GatewayLinkStatusExpired)}, nil)
		paymentRepo.On("OrderCodeExists", mock.Anything, mock.Anything).Return(false, nil)
		gateway.On("CreateCheckoutLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&responses.GatewayLink{CheckoutURL: "https://pay.example/new"}, nil)
		paymentRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.CreatePayment(context.Background(), &requests.CreatePayment{
			MedicalRecordID: "record-1",
			Amount:          150000,
			Description:     "Consultation fee",
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://pay.example/new", result.CheckoutURL)
	})

	t.Run("already-paid record is rejected", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, _, _ := newTestPaymentUsecase()

		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").
			Return(&models.Payment{ID: "payment-1", Status: models.PaymentPaid}, nil)

		_, err := uc.CreatePayment(context.Background(), &requests.CreatePayment{
			MedicalRecordID: "record-1",
			Amount:          150000,
			Description:     "Consultation fee",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("unknown medical record is rejected", func(t *testing.T) {
		uc, _, recordRepo, _, _, _ := newTestPaymentUsecase()

		recordRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.CreatePayment(context.Background(), &requests.CreatePayment{
			MedicalRecordID: "missing",
			Amount:          150000,
			Description:     "Consultation fee",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("exhausted order codes abort the attempt", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, _, _ := newTestPaymentUsecase()

		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").Return(nil, nil)
		paymentRepo.On("OrderCodeExists", mock.Anything, mock.Anything).Return(true, nil)

		_, err := uc.CreatePayment(context.Background(), &requests.CreatePayment{
			MedicalRecordID: "record-1",
			Amount:          150000,
			Description:     "Consultation fee",
		})

		assert.Error(t, err)
		paymentRepo.AssertNumberOfCalls(t, "OrderCodeExists", constvars.OrderCodeGenerationMaxAttempts)
	})
}

func TestHandlePaymentCallback(t *testing.T) {
	t.Run("paid callback marks the payment and notifies the patient", func(t *testing.T) {
		uc, paymentRepo, recordRepo, patientRepo, _, notificationUC := newTestPaymentUsecase()

		payment := &models.Payment{
			ID:              "payment-1",
			MedicalRecordID: "record-1",
			Amount:          150000,
			Status:          models.PaymentPending,
			OrderCode:       "250310123456",
		}
		userID := "user-1"
		paymentRepo.On("FindByOrderCode", mock.Anything, "250310123456").Return(payment, nil)
		paymentRepo.On("UpdateStatus", mock.Anything, "payment-1", models.PaymentPaid, mock.MatchedBy(func(paidAt *time.Time) bool {
			return paidAt != nil
		})).Return(nil)
		recordRepo.On("FindByID", mock.Anything, "record-1").
			Return(&models.MedicalRecord{ID: "record-1", PatientID: "patient-1"}, nil)
		patientRepo.On("FindByID", mock.Anything, "patient-1").
			Return(&models.Patient{ID: "patient-1", UserID: &userID, FullName: "Siti Rahma"}, nil)
		notificationUC.On("SendNotification", mock.Anything, mock.MatchedBy(func(req *requests.SendNotification) bool {
			return req.EmailTemplate == constvars.EmailTemplatePaymentReceipt &&
				len(req.ReceiverIDs) == 1 && req.ReceiverIDs[0] == "user-1"
		})).Return(&responses.SendNotification{NotificationID: "n-1", ReceiverCount: 1}, nil)

		err := uc.HandlePaymentCallback(context.Background(), &requests.PaymentCallback{
			OrderCode: "250310123456",
			Status:    string(constvars.GatewayLinkStatusPaid),
		})

		assert.NoError(t, err)
		paymentRepo.AssertExpectations(t)
		notificationUC.AssertExpectations(t)
	})

	t.Run("unknown order code is acknowledged without mutation", func(t *testing.T) {
		uc, paymentRepo, _, _, _, _ := newTestPaymentUsecase()

		paymentRepo.On("FindByOrderCode", mock.Anything, "999999999999").Return(nil, nil)

		err := uc.HandlePaymentCallback(context.Background(), &requests.PaymentCallback{
			OrderCode: "999999999999",
			Status:    string(constvars.GatewayLinkStatusPaid),
		})

		assert.NoError(t, err)
		paymentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("paid status is terminal against late cancellations", func(t *testing.T) {
		uc, paymentRepo, _, _, _, _ := newTestPaymentUsecase()

		paymentRepo.On("FindByOrderCode", mock.Anything, "250310123456").
			Return(&models.Payment{ID: "payment-1", Status: models.PaymentPaid, OrderCode: "250310123456"}, nil)

		err := uc.HandlePaymentCallback(context.Background(), &requests.PaymentCallback{
			OrderCode: "250310123456",
			Status:    string(constvars.GatewayLinkStatusCancelled),
		})

		assert.NoError(t, err)
		paymentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancelled callback demotes a pending payment", func(t *testing.T) {
		uc, paymentRepo, _, _, _, _ := newTestPaymentUsecase()

		paymentRepo.On("FindByOrderCode", mock.Anything, "250310123456").
			Return(&models.Payment{ID: "payment-1", Status: models.PaymentPending, OrderCode: "250310123456"}, nil)
		paymentRepo.On("UpdateStatus", mock.Anything, "payment-1", models.PaymentCancelled, (*time.Time)(nil)).Return(nil)

		err := uc.HandlePaymentCallback(context.Background(), &requests.PaymentCallback{
			OrderCode: "250310123456",
			Status:    string(constvars.GatewayLinkStatusCancelled),
		})

		assert.NoError(t, err)
		paymentRepo.AssertExpectations(t)
	})
}

func TestGetPaymentStatus(t *testing.T) {
	record := &models.MedicalRecord{ID: "record-1", PatientID: "patient-1"}

	t.Run("record without attempts reports none", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, _, _ := newTestPaymentUsecase()

		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").Return(nil, nil)

		result, err := uc.GetPaymentStatus(context.Background(), "record-1")

		assert.NoError(t, err)
		assert.Equal(t, string(models.PaymentNone), result.Status)
		assert.Nil(t, result.CheckoutURL)
	})

	t.Run("pending attempt exposes its checkout link", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, _, _ := newTestPaymentUsecase()

		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").
			Return(&models.Payment{ID: "payment-1", Status: models.PaymentPending, CheckoutURL: "https://pay.example/abc"}, nil)

		result, err := uc.GetPaymentStatus(context.Background(), "record-1")

		assert.NoError(t, err)
		assert.Equal(t, string(models.PaymentPending), result.Status)
		assert.NotNil(t, result.CheckoutURL)
		assert.Equal(t, "https://pay.example/abc", *result.CheckoutURL)
	})

	t.Run("paid attempt carries its payment date", func(t *testing.T) {
		uc, paymentRepo, recordRepo, _, _, _ := newTestPaymentUsecase()

		paidAt := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
		recordRepo.On("FindByID", mock.Anything, "record-1").Return(record, nil)
		paymentRepo.On("FindLatestByMedicalRecord", mock.Anything, "record-1").
			Return(&models.Payment{ID: "payment-1", Status: models.PaymentPaid, PaymentDate: &paidAt}, nil)

		result, err := uc.GetPaymentStatus(context.Background(), "record-1")

		assert.NoError(t, err)
		assert.Equal(t, string(models.PaymentPaid), result.Status)
		assert.NotNil(t, result.PaymentDate)
		assert.Equal(t, paidAt.Format(time.RFC3339), *result.PaymentDate)
	})
}
