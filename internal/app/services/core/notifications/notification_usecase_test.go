package notifications

import (
	"context"
	"testing"
	"time"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateWithReceivers(ctx context.Context, notification *models.Notification, receiverIDs []string) error {
	args := m.Called(ctx, notification, receiverIDs)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByReceiver(ctx context.Context, receiverID string, limit, offset int) ([]models.ReceivedNotification, int, error) {
	args := m.Called(ctx, receiverID, limit, offset)
	return args.Get(0).([]models.ReceivedNotification), args.Int(1), args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) ReceiverRowExists(ctx context.Context, notificationID, receiverID string) (bool, error) {
	args := m.Called(ctx, notificationID, receiverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID, receiverID string) error {
	args := m.Called(ctx, notificationID, receiverID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, receiverID string) (int64, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserIDsByRoles(ctx context.Context, roleNames []string) ([]string, error) {
	args := m.Called(ctx, roleNames)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) FindEmailsByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockUserRepository) FindUserIDsByDoctorIDs(ctx context.Context, doctorIDs []string) ([]string, error) {
	args := m.Called(ctx, doctorIDs)
	return args.Get(0).([]string), args.Error(1)
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

type MockMailQueueService struct {
	mock.Mock
}

func (m *MockMailQueueService) PublishEmailJob(ctx context.Context, job *requests.EmailJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func newTestNotificationUsecase() (*notificationUsecase, *MockNotificationRepository, *MockUserRepository, *MockRedisRepository, *MockMailQueueService) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	redisRepo := new(MockRedisRepository)
	mailQueue := new(MockMailQueueService)

	uc := &notificationUsecase{
		NotificationRepository: notificationRepo,
		UserRepository:         userRepo,
		RedisRepository:        redisRepo,
		MailQueueService:       mailQueue,
		Log:                    zap.NewNop(),
	}
	return uc, notificationRepo, userRepo, redisRepo, mailQueue
}

func TestSendNotification(t *testing.T) {
	t.Run("explicit receivers get one receiver row each and an email job", func(t *testing.T) {
		uc, notificationRepo, userRepo, redisRepo, mailQueue := newTestNotificationUsecase()

		notificationRepo.On("CreateWithReceivers", mock.Anything, mock.Anything, []string{"user-1", "user-2"}).Return(nil)
		redisRepo.On("Delete", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		userRepo.On("FindEmailsByUserIDs", mock.Anything, []string{"user-1", "user-2"}).
			Return(map[string]string{"user-1": "one@clinic.test"}, nil)
		mailQueue.On("PublishEmailJob", mock.Anything, mock.MatchedBy(func(job *requests.EmailJob) bool {
			return len(job.To) == 1 && job.To[0] == "one@clinic.test" &&
				job.TemplateName == constvars.EmailTemplateNotification
		})).Return(nil)

		result, err := uc.SendNotification(context.Background(), &requests.SendNotification{
			Title:       "Clinic closed Friday",
			Content:     "The clinic is closed for maintenance.",
			Type:        string(models.NotificationTypeSystem),
			ReceiverIDs: []string{"user-1", "user-2"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.ReceiverCount)
		// user-2 has no known address, so exactly one job goes out.
		mailQueue.AssertNumberOfCalls(t, "PublishEmailJob", 1)
	})

	t.Run("role names resolve to a user snapshot with duplicates removed", func(t *testing.T) {
		uc, notificationRepo, userRepo, redisRepo, mailQueue := newTestNotificationUsecase()

		userRepo.On("FindUserIDsByRoles", mock.Anything, []string{"doctor", "nurse"}).
			Return([]string{"user-1", "user-2", "user-1", ""}, nil)
		notificationRepo.On("CreateWithReceivers", mock.Anything, mock.Anything, []string{"user-1", "user-2"}).Return(nil)
		redisRepo.On("Delete", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		userRepo.On("FindEmailsByUserIDs", mock.Anything, mock.Anything).Return(map[string]string{}, nil)

		result, err := uc.SendNotification(context.Background(), &requests.SendNotification{
			Title:     "Shift briefing",
			Content:   "Briefing at 07:30 in room 2.",
			Type:      string(models.NotificationTypeSystem),
			RoleNames: []string{"doctor", "nurse"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.ReceiverCount)
		notificationRepo.AssertExpectations(t)
		mailQueue.AssertNotCalled(t, "PublishEmailJob", mock.Anything, mock.Anything)
	})

	t.Run("no resolvable receiver is rejected", func(t *testing.T) {
		uc, notificationRepo, userRepo, _, _ := newTestNotificationUsecase()

		userRepo.On("FindUserIDsByRoles", mock.Anything, []string{"doctor"}).Return([]string{}, nil)

		_, err := uc.SendNotification(context.Background(), &requests.SendNotification{
			Title:     "Shift briefing",
			Content:   "Briefing at 07:30.",
			Type:      string(models.NotificationTypeSystem),
			RoleNames: []string{"doctor"},
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		notificationRepo.AssertNotCalled(t, "CreateWithReceivers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure never fails the notification", func(t *testing.T) {
		uc, notificationRepo, userRepo, redisRepo, mailQueue := newTestNotificationUsecase()

		notificationRepo.On("CreateWithReceivers", mock.Anything, mock.Anything, []string{"user-1"}).Return(nil)
		redisRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)
		userRepo.On("FindEmailsByUserIDs", mock.Anything, mock.Anything).
			Return(map[string]string{"user-1": "one@clinic.test"}, nil)
		mailQueue.On("PublishEmailJob", mock.Anything, mock.Anything).
			Return(exceptions.ErrRabbitMQPublishMessage(assert.AnError, "email_jobs"))

		result, err := uc.SendNotification(context.Background(), &requests.SendNotification{
			Title:       "Clinic closed Friday",
			Content:     "The clinic is closed for maintenance.",
			Type:        string(models.NotificationTypeSystem),
			ReceiverIDs: []string{"user-1"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.ReceiverCount)
	})
}

func TestGetUnreadCount(t *testing.T) {
	cacheKey := "notification:unread_count:user-1"

	t.Run("cache hit skips the database", func(t *testing.T) {
		uc, notificationRepo, _, redisRepo, _ := newTestNotificationUsecase()

		redisRepo.On("Get", mock.Anything, cacheKey).Return("7", nil)

		result, err := uc.GetUnreadCount(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), result.Count)
		notificationRepo.AssertNotCalled(t, "CountUnread", mock.Anything, mock.Anything)
	})

	t.Run("cache miss counts and backfills the cache", func(t *testing.T) {
		uc, notificationRepo, _, redisRepo, _ := newTestNotificationUsecase()

		redisRepo.On("Get", mock.Anything, cacheKey).Return("", nil)
		notificationRepo.On("CountUnread", mock.Anything, "user-1").Return(int64(3), nil)
		redisRepo.On("Set", mock.Anything, cacheKey, "3", unreadCountCacheTTL).Return(nil)

		result, err := uc.GetUnreadCount(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), result.Count)
		redisRepo.AssertExpectations(t)
	})

	t.Run("garbage cache value falls back to the database", func(t *testing.T) {
		uc, notificationRepo, _, redisRepo, _ := newTestNotificationUsecase()

		redisRepo.On("Get", mock.Anything, cacheKey).Return("not-a-number", nil)
		notificationRepo.On("CountUnread", mock.Anything, "user-1").Return(int64(0), nil)
		redisRepo.On("Set", mock.Anything, cacheKey, "0", unreadCountCacheTTL).Return(nil)

		result, err := uc.GetUnreadCount(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.Count)
	})
}

func TestMarkRead(t *testing.T) {
	t.Run("marks a delivered notification and invalidates the cache", func(t *testing.T) {
		uc, notificationRepo, _, redisRepo, _ := newTestNotificationUsecase()

		notificationRepo.On("ReceiverRowExists", mock.Anything, "n-1", "user-1").Return(true, nil)
		notificationRepo.On("MarkRead", mock.Anything, "n-1", "user-1").Return(nil)
		redisRepo.On("Delete", mock.Anything, "notification:unread_count:user-1").Return(nil)

		result, err := uc.MarkRead(context.Background(), "user-1", "n-1")

		assert.NoError(t, err)
		assert.True(t, result.Updated)
		redisRepo.AssertExpectations(t)
	})

	t.Run("never-delivered notification reports updated false", func(t *testing.T) {
		uc, notificationRepo, _, _, _ := newTestNotificationUsecase()

		notificationRepo.On("ReceiverRowExists", mock.Anything, "n-1", "user-1").Return(false, nil)

		result, err := uc.MarkRead(context.Background(), "user-1", "n-1")

		assert.NoError(t, err)
		assert.False(t, result.Updated)
		notificationRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMarkAllRead(t *testing.T) {
	uc, notificationRepo, _, redisRepo, _ := newTestNotificationUsecase()

	notificationRepo.On("MarkAllRead", mock.Anything, "user-1").Return(int64(4), nil)
	redisRepo.On("Delete", mock.Anything, "notification:unread_count:user-1").Return(nil)

	err := uc.MarkAllRead(context.Background(), "user-1")

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
	redisRepo.AssertExpectations(t)
}
