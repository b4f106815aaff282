package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindUserIDsByRoles resolves role names into the ids of users currently
	// holding any of them: a snapshot, never re-evaluated by callers.
	FindUserIDsByRoles(ctx context.Context, roleNames []string) ([]string, error)

	FindEmailsByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error)
	FindUserIDsByDoctorIDs(ctx context.Context, doctorIDs []string) ([]string, error)
}
