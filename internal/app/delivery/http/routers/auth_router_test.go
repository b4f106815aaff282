package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, keys ...string) error {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, key := range keys {
		callArgs = append(callArgs, key)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}

func TestAuthRouter_LoginEndpoint(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-jwt-secret", ExpTimeInHour: 1},
	}

	mockAuthUsecase := new(MockAuthUsecase)
	mockRedisRepository := new(MockRedisRepository)

	authController := controllers.NewAuthController(logger, mockAuthUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:             logger,
		RedisRepository: mockRedisRepository,
		InternalConfig:  internalConfig,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestID)
	attachAuthRoutes(router, middlewareInstance, authController)

	t.Run("Login with valid credentials", func(t *testing.T) {
		mockAuthUsecase.On("Login", mock.Anything, mock.MatchedBy(func(req *requests.LoginUser) bool {
			return req.Username == "drbudi"
		})).Return(&responses.Login{Token: "signed-token", UserID: "user-1", Username: "drbudi", RoleName: "doctor"}, nil).Once()

		jsonBody, _ := json.Marshal(requests.LoginUser{Username: "drbudi", Password: "correct-horse"})

		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Login with a short password fails validation", func(t *testing.T) {
		jsonBody, _ := json.Marshal(requests.LoginUser{Username: "drbudi", Password: "short"})

		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Login with a malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", bytes.NewBufferString("{not-json"))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Logout without a bearer token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/logout", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("Logout with a valid session token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-1", internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
		assert.NoError(t, err)

		sessionJSON, _ := json.Marshal(requests.SessionData{
			SessionID: "session-1",
			UserID:    "user-1",
			Username:  "drbudi",
			RoleName:  "doctor",
		})
		mockRedisRepository.On("Get", mock.Anything, "session:session-1").Return(string(sessionJSON), nil).Once()
		mockAuthUsecase.On("Logout", mock.Anything, "session-1").Return(nil).Once()

		req := httptest.NewRequest("POST", "/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Logout with an expired session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-gone", internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
		assert.NoError(t, err)

		mockRedisRepository.On("Get", mock.Anything, "session:session-gone").Return("", nil).Once()

		req := httptest.NewRequest("POST", "/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
