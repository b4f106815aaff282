package config

import (
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "clinicare"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@clinicare.local"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medical-record-attachments"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		PaymentGateway: PaymentGateway{
			BaseURL:              utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api-merchant.payos.vn"),
			ClientID:             utils.GetEnvString("PAYMENT_GATEWAY_CLIENT_ID", ""),
			APIKey:               utils.GetEnvString("PAYMENT_GATEWAY_API_KEY", ""),
			ChecksumKey:          utils.GetEnvString("PAYMENT_GATEWAY_CHECKSUM_KEY", ""),
			PartnerCode:          utils.GetEnvString("PAYMENT_GATEWAY_PARTNER_CODE", ""),
			ReturnURL:            utils.GetEnvString("PAYMENT_GATEWAY_RETURN_URL", ""),
			CancelURL:            utils.GetEnvString("PAYMENT_GATEWAY_CANCEL_URL", ""),
			BankAccountName:      utils.GetEnvString("PAYMENT_BANK_ACCOUNT_NAME", ""),
			BankAccountNumber:    utils.GetEnvString("PAYMENT_BANK_ACCOUNT_NUMBER", ""),
			BankName:             utils.GetEnvString("PAYMENT_BANK_NAME", ""),
			MaxRequestsPerSecond: utils.GetEnvInt("PAYMENT_GATEWAY_MAX_RPS", 5),
		},
		Schedule: Schedule{
			ConflictPolicy: utils.GetEnvString("SCHEDULE_CONFLICT_POLICY", constvars.ScheduleConflictPolicyReject),
		},
		Reminder: Reminder{
			Enabled: utils.GetEnvBool("REMINDER_ENABLED", true),
		},
		Mailer: Mailer{
			QueueName: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "clinicare_mailer_queue"),
		},
	}
}
