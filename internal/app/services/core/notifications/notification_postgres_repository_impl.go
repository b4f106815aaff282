package notifications

import (
	"context"
	"database/sql"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/queries"

	"github.com/google/uuid"
)

type notificationPostgresRepository struct {
	DB *sql.DB
}

func NewNotificationPostgresRepository(db *sql.DB) contracts.NotificationRepository {
	return &notificationPostgresRepository{
		DB: db,
	}
}

func (repo *notificationPostgresRepository) CreateWithReceivers(ctx context.Context, notification *models.Notification, receiverIDs []string) error {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}

	var createdBy sql.NullString
	if notification.CreatedBy != nil {
		createdBy = sql.NullString{String: *notification.CreatedBy, Valid: true}
	}

	_, err = tx.ExecContext(ctx, queries.InsertNotification,
		notification.ID,
		notification.Title,
		notification.Content,
		notification.Type,
		createdBy,
		notification.IsGlobal,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}

	for _, receiverID := range receiverIDs {
		if _, err := tx.ExecContext(ctx, queries.InsertNotificationReceiver, notification.ID, receiverID); err != nil {
			return exceptions.ErrPostgresDBInsertData(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBCommitTx(err)
	}
	return nil
}

func (repo *notificationPostgresRepository) FindByReceiver(ctx context.Context, receiverID string, limit, offset int) ([]models.ReceivedNotification, int, error) {
	var total int
	if err := repo.DB.QueryRowContext(ctx, queries.CountNotificationsByReceiver, receiverID).Scan(&total); err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetNotificationsByReceiver, receiverID, limit, offset)
	if err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var notifications []models.ReceivedNotification
	for rows.Next() {
		var model models.ReceivedNotification
		if err := rows.Scan(
			&model.ID,
			&model.Title,
			&model.Content,
			&model.Type,
			&model.IsRead,
			&model.CreatedAt,
		); err != nil {
			return nil, 0, exceptions.ErrPostgresDBScanRow(err)
		}
		notifications = append(notifications, model)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	return notifications, total, nil
}

func (repo *notificationPostgresRepository) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	var count int64
	if err := repo.DB.QueryRowContext(ctx, queries.CountUnreadByReceiver, receiverID).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (repo *notificationPostgresRepository) ReceiverRowExists(ctx context.Context, notificationID, receiverID string) (bool, error) {
	var count int
	if err := repo.DB.QueryRowContext(ctx, queries.CountReceiverRow, notificationID, receiverID).Scan(&count); err != nil {
		return false, exceptions.ErrPostgresDBFindData(err)
	}
	return count > 0, nil
}

func (repo *notificationPostgresRepository) MarkRead(ctx context.Context, notificationID, receiverID string) error {
	if _, err := repo.DB.ExecContext(ctx, queries.MarkNotificationRead, notificationID, receiverID); err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *notificationPostgresRepository) MarkAllRead(ctx context.Context, receiverID string) (int64, error) {
	result, err := repo.DB.ExecContext(ctx, queries.MarkAllNotificationsRead, receiverID)
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected, nil
}
