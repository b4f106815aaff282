package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
)

type NotificationRepository interface {
	// CreateWithReceivers inserts the notification plus one receiver row per
	// id in a single transaction.
	CreateWithReceivers(ctx context.Context, notification *models.Notification, receiverIDs []string) error

	FindByReceiver(ctx context.Context, receiverID string, limit, offset int) ([]models.ReceivedNotification, int, error)
	CountUnread(ctx context.Context, receiverID string) (int64, error)

	ReceiverRowExists(ctx context.Context, notificationID, receiverID string) (bool, error)
	MarkRead(ctx context.Context, notificationID, receiverID string) error
	MarkAllRead(ctx context.Context, receiverID string) (int64, error)
}

type NotificationUsecase interface {
	SendNotification(ctx context.Context, request *requests.SendNotification) (*responses.SendNotification, error)
	GetUserNotifications(ctx context.Context, userID string, page, pageSize int) ([]responses.UserNotification, *responses.Pagination, error)
	GetUnreadCount(ctx context.Context, userID string) (*responses.UnreadCount, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*responses.MarkRead, error)
	MarkAllRead(ctx context.Context, userID string) error
}
