package contracts

import (
	"context"

	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
