package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicare-service/cmd/migration"
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/delivery/http/routers"
	"clinicare-service/internal/app/drivers/database"
	"clinicare-service/internal/app/drivers/logger"
	smtpdriver "clinicare-service/internal/app/drivers/mailer"
	"clinicare-service/internal/app/drivers/messaging"
	miniodriver "clinicare-service/internal/app/drivers/storage"
	"clinicare-service/internal/app/services/core/appointments"
	"clinicare-service/internal/app/services/core/auth"
	"clinicare-service/internal/app/services/core/dashboard"
	"clinicare-service/internal/app/services/core/doctors"
	"clinicare-service/internal/app/services/core/medicalrecords"
	"clinicare-service/internal/app/services/core/notifications"
	"clinicare-service/internal/app/services/core/patients"
	"clinicare-service/internal/app/services/core/payments"
	"clinicare-service/internal/app/services/core/schedules"
	"clinicare-service/internal/app/services/core/shifts"
	"clinicare-service/internal/app/services/core/users"
	sharedmailer "clinicare-service/internal/app/services/shared/mailer"
	"clinicare-service/internal/app/services/shared/mailqueue"
	paymentgateway "clinicare-service/internal/app/services/shared/payment_gateway"
	sharedredis "clinicare-service/internal/app/services/shared/redis"
	"clinicare-service/internal/app/services/shared/reminder"
	sharedstorage "clinicare-service/internal/app/services/shared/storage"
	"clinicare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	if utils.GetEnvBool("RUN_MIGRATIONS", false) {
		if err := migration.Run(postgresDB, zapLogger); err != nil {
			zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
		}
	}
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	bootstrapTheApp(workerCtx, config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("addr", internalConfig.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests to be processed..")

	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	postgresDB.Close()
	redisClient.Close()
	rabbitMQ.Close()

	zapLogger.Info("Server exiting")
}

func bootstrapTheApp(workerCtx context.Context, bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	mailQueueService, err := mailqueue.NewMailQueueService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.QueueName)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to set up mail queue", zap.Error(err))
	}

	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerService := sharedmailer.NewMailerService(smtpClient)

	minioClient := miniodriver.NewMinio(bootstrap.DriverConfig)
	storageService := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	gatewayService := paymentgateway.NewPayosService(bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB)
	doctorRepository := doctors.NewDoctorPostgresRepository(bootstrap.PostgresDB)
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB)
	shiftRepository := shifts.NewShiftPostgresRepository(bootstrap.PostgresDB)
	scheduleRepository := schedules.NewSchedulePostgresRepository(bootstrap.PostgresDB)
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB)
	notificationRepository := notifications.NewNotificationPostgresRepository(bootstrap.PostgresDB)
	paymentRepository := payments.NewPaymentPostgresRepository(bootstrap.PostgresDB)
	medicalRecordRepository := medicalrecords.NewMedicalRecordPostgresRepository(bootstrap.PostgresDB)
	dashboardRepository := dashboard.NewDashboardPostgresRepository(bootstrap.PostgresDB)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	notificationUsecase := notifications.NewNotificationUsecase(
		notificationRepository,
		userRepository,
		redisRepository,
		mailQueueService,
		bootstrap.Logger,
	)
	scheduleUsecase := schedules.NewScheduleUsecase(
		scheduleRepository,
		doctorRepository,
		shiftRepository,
		userRepository,
		notificationUsecase,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		scheduleRepository,
		patientRepository,
		doctorRepository,
		shiftRepository,
		bootstrap.Logger,
	)
	medicalRecordUsecase := medicalrecords.NewMedicalRecordUsecase(
		medicalRecordRepository,
		patientRepository,
		doctorRepository,
		appointmentRepository,
		storageService,
		bootstrap.Logger,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		medicalRecordRepository,
		patientRepository,
		gatewayService,
		notificationUsecase,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	dashboardUsecase := dashboard.NewDashboardUsecase(dashboardRepository, bootstrap.Logger)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, notificationUsecase)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)
	webhookController := controllers.NewWebhookController(bootstrap.Logger, paymentUsecase)
	medicalRecordController := controllers.NewMedicalRecordController(bootstrap.Logger, medicalRecordUsecase)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		scheduleController,
		appointmentController,
		notificationController,
		paymentController,
		webhookController,
		medicalRecordController,
		dashboardController,
	)

	// Background workers
	go func() {
		if err := mailqueue.ConsumeEmailJobs(workerCtx, bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.QueueName, mailerService); err != nil {
			bootstrap.Logger.Error("Email consumer stopped", zap.Error(err))
		}
	}()

	if bootstrap.InternalConfig.Reminder.Enabled {
		reminderService := reminder.NewReminderService(
			appointmentRepository,
			patientRepository,
			doctorRepository,
			notificationUsecase,
			bootstrap.Logger,
		)
		go reminderService.Run(workerCtx)
	}
}
