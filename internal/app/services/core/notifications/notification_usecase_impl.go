package notifications

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const unreadCountCacheTTL = 10 * time.Minute

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	UserRepository         contracts.UserRepository
	RedisRepository        contracts.RedisRepository
	MailQueueService       contracts.MailQueueService
	Log                    *zap.Logger
}

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	mailQueueService contracts.MailQueueService,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			UserRepository:         userRepository,
			RedisRepository:        redisRepository,
			MailQueueService:       mailQueueService,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) SendNotification(ctx context.Context, request *requests.SendNotification) (*responses.SendNotification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.SendNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("type", request.Type),
	)

	receiverIDs, err := uc.resolveReceivers(ctx, request)
	if err != nil {
		return nil, err
	}
	if len(receiverIDs) == 0 {
		return nil, exceptions.ErrNotificationNoReceiver(nil)
	}

	notification := &models.Notification{
		Title:    request.Title,
		Content:  request.Content,
		Type:     models.NotificationType(request.Type),
		IsGlobal: request.IsGlobal,
	}
	if request.CreatedBy != "" {
		notification.CreatedBy = &request.CreatedBy
	}

	if err := uc.NotificationRepository.CreateWithReceivers(ctx, notification, receiverIDs); err != nil {
		return nil, err
	}

	uc.invalidateUnreadCounts(ctx, receiverIDs)
	uc.enqueueEmails(ctx, request, receiverIDs)

	uc.Log.Info("notificationUsecase.SendNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notification.ID),
		zap.Int("receiver_count", len(receiverIDs)),
	)
	return &responses.SendNotification{
		NotificationID: notification.ID,
		ReceiverCount:  len(receiverIDs),
	}, nil
}

// resolveReceivers picks explicit receiver ids when given, otherwise takes a
// snapshot of the users currently holding any of the requested roles. The
// snapshot is never re-evaluated: users gaining the role later do not see the
// notification.
func (uc *notificationUsecase) resolveReceivers(ctx context.Context, request *requests.SendNotification) ([]string, error) {
	candidates := request.ReceiverIDs
	if len(candidates) == 0 && len(request.RoleNames) > 0 {
		var err error
		candidates, err = uc.UserRepository.FindUserIDsByRoles(ctx, request.RoleNames)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(candidates))
	var receiverIDs []string
	for _, id := range candidates {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		receiverIDs = append(receiverIDs, id)
	}
	return receiverIDs, nil
}

func (uc *notificationUsecase) invalidateUnreadCounts(ctx context.Context, receiverIDs []string) {
	keys := make([]string, 0, len(receiverIDs))
	for _, receiverID := range receiverIDs {
		keys = append(keys, fmt.Sprintf(constvars.RedisUnreadCountKeyFormat, receiverID))
	}
	if err := uc.RedisRepository.Delete(ctx, keys...); err != nil {
		uc.Log.Warn("notificationUsecase.invalidateUnreadCounts failed", zap.Error(err))
	}
}

// enqueueEmails publishes one email job per receiver with a known address.
// Internal callers may attach a richer template; API callers get the generic
// notification mail. Failures are logged and swallowed.
func (uc *notificationUsecase) enqueueEmails(ctx context.Context, request *requests.SendNotification, receiverIDs []string) {
	emails, err := uc.UserRepository.FindEmailsByUserIDs(ctx, receiverIDs)
	if err != nil {
		uc.Log.Warn("notificationUsecase.enqueueEmails failed to resolve emails", zap.Error(err))
		return
	}

	templateName := request.EmailTemplate
	values := request.EmailValues
	if templateName == "" {
		templateName = constvars.EmailTemplateNotification
		values = map[string]string{
			"title":   request.Title,
			"content": request.Content,
		}
	}

	for _, receiverID := range receiverIDs {
		email := emails[receiverID]
		if email == "" {
			continue
		}
		job := &requests.EmailJob{
			To:           []string{email},
			Subject:      request.Title,
			TemplateName: templateName,
			Values:       values,
		}
		if err := uc.MailQueueService.PublishEmailJob(ctx, job); err != nil {
			uc.Log.Warn("notificationUsecase.enqueueEmails publish failed",
				zap.String(constvars.LoggingUserIDKey, receiverID),
				zap.Error(err),
			)
		}
	}
}

func (uc *notificationUsecase) GetUserNotifications(ctx context.Context, userID string, page, pageSize int) ([]responses.UserNotification, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.GetUserNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	page, pageSize = utils.NormalizePageParams(page, pageSize)
	notifications, total, err := uc.NotificationRepository.FindByReceiver(ctx, userID, pageSize, utils.PageOffset(page, pageSize))
	if err != nil {
		return nil, nil, err
	}

	results := make([]responses.UserNotification, 0, len(notifications))
	for _, notification := range notifications {
		results = append(results, responses.UserNotification{
			NotificationID: notification.ID,
			Title:          notification.Title,
			Content:        notification.Content,
			Type:           string(notification.Type),
			IsRead:         notification.IsRead,
			CreatedAt:      notification.CreatedAt.Format(time.RFC3339),
		})
	}
	return results, utils.BuildPaginationResponse(total, page, pageSize), nil
}

func (uc *notificationUsecase) GetUnreadCount(ctx context.Context, userID string) (*responses.UnreadCount, error) {
	cacheKey := fmt.Sprintf(constvars.RedisUnreadCountKeyFormat, userID)
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return &responses.UnreadCount{Count: count}, nil
		}
	}

	count, err := uc.NotificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, cacheKey, strconv.FormatInt(count, 10), unreadCountCacheTTL); err != nil {
		uc.Log.Warn("notificationUsecase.GetUnreadCount cache write failed", zap.Error(err))
	}
	return &responses.UnreadCount{Count: count}, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, userID, notificationID string) (*responses.MarkRead, error) {
	exists, err := uc.NotificationRepository.ReceiverRowExists(ctx, notificationID, userID)
	if err != nil {
		return nil, err
	}
	// Marking a notification that was never delivered to this user is not an
	// error: the caller just learns nothing changed.
	if !exists {
		return &responses.MarkRead{Updated: false}, nil
	}

	if err := uc.NotificationRepository.MarkRead(ctx, notificationID, userID); err != nil {
		return nil, err
	}

	uc.invalidateUnreadCounts(ctx, []string{userID})
	return &responses.MarkRead{Updated: true}, nil
}

func (uc *notificationUsecase) MarkAllRead(ctx context.Context, userID string) error {
	if _, err := uc.NotificationRepository.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	uc.invalidateUnreadCounts(ctx, []string{userID})
	return nil
}
