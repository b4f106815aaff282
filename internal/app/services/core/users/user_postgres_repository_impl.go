package users

import (
	"context"
	"database/sql"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"

	"github.com/lib/pq"
)

type userPostgresRepository struct {
	DB *sql.DB
}

func NewUserPostgresRepository(db *sql.DB) contracts.UserRepository {
	return &userPostgresRepository{
		DB: db,
	}
}

func (repo *userPostgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return repo.scanUser(repo.DB.QueryRowContext(ctx, queries.GetUserByUsername, username))
}

func (repo *userPostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return repo.scanUser(repo.DB.QueryRowContext(ctx, queries.GetUserByID, id))
}

func (repo *userPostgresRepository) FindUserIDsByRoles(ctx context.Context, roleNames []string) ([]string, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetUserIDsByRoleNames, pq.Array(roleNames))
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

func (repo *userPostgresRepository) FindEmailsByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetEmailsByUserIDs, pq.Array(userIDs))
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	emails := make(map[string]string)
	for rows.Next() {
		var id, email string
		if err := rows.Scan(&id, &email); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		emails[id] = email
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return emails, nil
}

func (repo *userPostgresRepository) FindUserIDsByDoctorIDs(ctx context.Context, doctorIDs []string) ([]string, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetUserIDsByDoctorIDs, pq.Array(doctorIDs))
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

func (repo *userPostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.FullName,
		&user.RoleName,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &user, nil
}

func scanIDs(rows *sql.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return ids, nil
}
