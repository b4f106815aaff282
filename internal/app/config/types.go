package config

type (
	DriverConfig struct {
		Postgres Postgres
		Redis    Redis
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Minio    Minio
		Logger   Logger
	}

	Postgres struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
		Schedule       Schedule
		Reminder       Reminder
		Mailer         Mailer
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	PaymentGateway struct {
		BaseURL     string
		ClientID    string
		APIKey      string
		ChecksumKey string
		PartnerCode string
		ReturnURL   string
		CancelURL   string
		// Bank account display info shown beside the checkout QR block.
		BankAccountName   string
		BankAccountNumber string
		BankName          string
		// Requests per second allowed against the gateway.
		MaxRequestsPerSecond int
	}

	Schedule struct {
		// reject: a single conflicting doctor fails the whole batch.
		// skip: conflicting doctors are skipped and reported.
		ConflictPolicy string
	}

	Reminder struct {
		Enabled bool
	}

	Mailer struct {
		QueueName string
	}
)
