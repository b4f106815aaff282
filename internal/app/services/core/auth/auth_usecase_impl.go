package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "warning", zap.String("username", request.Username))
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "warning", zap.String("username", request.Username))
		return nil, exceptions.ErrInvalidUsernameOrPassword(err)
	}

	sessionID := uuid.NewString()
	sessionData := requests.SessionData{
		SessionID: sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		RoleName:  user.RoleName,
	}
	sessionJSON, err := json.Marshal(sessionData)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	if err := uc.RedisRepository.Set(ctx, sessionKey, string(sessionJSON), sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	utils.LogSecurityEvent(uc.Log, "login_succeeded", requestID, "info", zap.String("username", user.Username))
	return &responses.Login{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		RoleName: user.RoleName,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	return uc.RedisRepository.Delete(ctx, sessionKey)
}
