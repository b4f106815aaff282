package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNCR_SVC_"
)

const (
	ResourceAuth           = "auth"
	ResourceUsers          = "users"
	ResourceDoctors        = "doctors"
	ResourcePatients       = "patients"
	ResourceShifts         = "shifts"
	ResourceSchedules      = "schedules"
	ResourceAppointments   = "appointments"
	ResourceNotifications  = "notifications"
	ResourcePayments       = "payments"
	ResourceMedicalRecords = "medical-records"
	ResourceDashboard      = "dashboard"
	ResourceWebhooks       = "webhooks"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// DateOnlyLayout is the calendar-date wire format used by every schedule
// and appointment endpoint. Dates carry no time zone.
const (
	DateOnlyLayout  = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

const (
	// Conflict policy for bulk schedule creation: reject the whole batch or
	// skip conflicting doctors and report partial success.
	ScheduleConflictPolicyReject = "reject"
	ScheduleConflictPolicySkip   = "skip"
)

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RoleNurse   = "nurse"
	RolePatient = "patient"
)

const (
	OrderCodeGenerationMaxAttempts = 5
	OrderCodeSuffixLength          = 6
)

const (
	ReminderHourLocal = 10
)
