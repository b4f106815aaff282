package payment_gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	payosServiceInstance contracts.PaymentGatewayService
	oncePayosService     sync.Once
)

type payosService struct {
	BaseURL     string
	ClientID    string
	APIKey      string
	ChecksumKey string
	PartnerCode string
	ReturnURL   string
	CancelURL   string
	Limiter     *rate.Limiter
	Client      *http.Client
	Log         *zap.Logger
}

type gatewayEnvelope struct {
	Code string                `json:"code"`
	Desc string                `json:"desc"`
	Data responses.GatewayLink `json:"data"`
}

func NewPayosService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	oncePayosService.Do(func() {
		gatewayConfig := internalConfig.PaymentGateway
		payosServiceInstance = &payosService{
			BaseURL:     gatewayConfig.BaseURL,
			ClientID:    gatewayConfig.ClientID,
			APIKey:      gatewayConfig.APIKey,
			ChecksumKey: gatewayConfig.ChecksumKey,
			PartnerCode: gatewayConfig.PartnerCode,
			ReturnURL:   gatewayConfig.ReturnURL,
			CancelURL:   gatewayConfig.CancelURL,
			Limiter:     rate.NewLimiter(rate.Limit(gatewayConfig.MaxRequestsPerSecond), gatewayConfig.MaxRequestsPerSecond),
			Client:      &http.Client{},
			Log:         logger,
		}
	})
	return payosServiceInstance
}

func (s *payosService) CreateCheckoutLink(ctx context.Context, orderCode string, amount int64, description string, items []models.PaymentItem) (*responses.GatewayLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("payosService.CreateCheckoutLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderCodeKey, orderCode),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrGatewayCreateLink(err)
	}

	description = truncateDescription(description)

	payload := &requests.GatewayCreateLink{
		OrderCode:   orderCode,
		Amount:      amount,
		Description: description,
		Items:       toGatewayItems(items),
		CancelURL:   s.CancelURL,
		ReturnURL:   s.ReturnURL,
	}
	payload.Signature = s.sign(payload)

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+constvars.GatewayCreateLinkPath, bytes.NewBuffer(payloadJSON))
	if err != nil {
		return nil, exceptions.ErrGatewayCreateLink(err)
	}
	s.setHeaders(req)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("payosService.CreateCheckoutLink error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrGatewayCreateLink(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrGatewayCreateLink(fmt.Errorf("gateway responded with status %d", resp.StatusCode))
	}

	envelope := new(gatewayEnvelope)
	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return nil, exceptions.ErrGatewayCreateLink(err)
	}

	s.Log.Info("payosService.CreateCheckoutLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderCodeKey, envelope.Data.OrderCode),
	)
	return &envelope.Data, nil
}

func (s *payosService) GetCheckoutLink(ctx context.Context, orderCode string) (*responses.GatewayLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("payosService.GetCheckoutLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderCodeKey, orderCode),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrGatewayGetLink(err)
	}

	url := s.BaseURL + fmt.Sprintf(constvars.GatewayGetLinkPath, orderCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrGatewayGetLink(err)
	}
	s.setHeaders(req)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("payosService.GetCheckoutLink error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrGatewayGetLink(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGatewayGetLink(fmt.Errorf("gateway responded with status %d", resp.StatusCode))
	}

	envelope := new(gatewayEnvelope)
	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return nil, exceptions.ErrGatewayGetLink(err)
	}
	return &envelope.Data, nil
}

func (s *payosService) setHeaders(req *http.Request) {
	req.Header.Set(constvars.GatewayHeaderClientID, s.ClientID)
	req.Header.Set(constvars.GatewayHeaderAPIKey, s.APIKey)
	if s.PartnerCode != "" {
		req.Header.Set(constvars.GatewayHeaderPartner, s.PartnerCode)
	}
}

// sign computes the HMAC-SHA256 signature over the alphabetically ordered
// checkout fields, keyed with the merchant checksum key.
func (s *payosService) sign(payload *requests.GatewayCreateLink) string {
	data := fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%s&returnUrl=%s",
		payload.Amount, payload.CancelURL, payload.Description, payload.OrderCode, payload.ReturnURL)
	mac := hmac.New(sha256.New, []byte(s.ChecksumKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// truncateDescription cuts to the gateway limit in characters, not bytes, so
// multi-byte descriptions are never split mid-rune.
func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) > constvars.GatewayDescriptionMaxLength {
		return string(runes[:constvars.GatewayDescriptionMaxLength])
	}
	return description
}

func toGatewayItems(items []models.PaymentItem) []requests.GatewayLinkItem {
	if len(items) == 0 {
		return nil
	}
	gatewayItems := make([]requests.GatewayLinkItem, 0, len(items))
	for _, item := range items {
		gatewayItems = append(gatewayItems, requests.GatewayLinkItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    int64(item.Price),
		})
	}
	return gatewayItems
}
