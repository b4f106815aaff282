package constvars

// Client-facing messages. Kept generic for infrastructure failures so that
// internals never leak through the API surface.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in or your session has expired"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"

	ErrClientUserNotFound          = "User not found"
	ErrClientDoctorNotFound        = "Doctor not found"
	ErrClientPatientNotFound       = "Patient not found"
	ErrClientShiftNotFound         = "Shift not found"
	ErrClientAssignmentNotFound    = "Shift assignment not found"
	ErrClientNotificationNotFound  = "Notification not found"
	ErrClientAppointmentNotFound   = "Appointment not found"
	ErrClientMedicalRecordNotFound = "Medical record not found"
	ErrClientPaymentNotFound       = "Payment not found"

	ErrClientScheduleConflict       = "The doctor already has an overlapping assignment for this shift"
	ErrClientDoctorNotOnShift       = "The doctor is not scheduled for this shift on the requested date"
	ErrClientInvalidStatusChange    = "This status change is not allowed"
	ErrClientMedicalRecordPaid      = "This medical record has already been paid"
	ErrClientNotificationNoReceiver = "A notification must resolve to at least one receiver"
	ErrClientInvalidDateRange       = "The start date must not be after the end date"
	ErrClientInvalidShiftTimes      = "The shift end time must be after its start time"

	ErrClientAttachmentFileMissing = "An attachment file is required"
	ErrClientAttachmentTooLarge    = "The attachment file is too large"
)

// Developer-facing messages, logged server-side only.
const (
	ErrDevValidationFailed      = "request validation failed"
	ErrDevCannotParseJSON       = "failed to parse JSON body"
	ErrDevCannotMarshalJSON     = "failed to marshal JSON payload"
	ErrDevCannotParseDate       = "failed to parse date value"
	ErrDevMissingRequestID      = "request id missing from context"
	ErrDevInvalidCredentials    = "credentials do not match any user"
	ErrDevFailedToHashPassword  = "failed to hash password"
	ErrDevAuthTokenMissing      = "authorization token missing"
	ErrDevAuthGenerateToken     = "failed to generate session token"
	ErrDevAuthTokenInvalid      = "session token invalid or expired"
	ErrDevServerDeadline        = "server deadline exceeded"

	ErrDevDBBeginTx        = "failed to begin database transaction"
	ErrDevDBCommitTx       = "failed to commit database transaction"
	ErrDevDBFailedToFind   = "failed to find data in database"
	ErrDevDBFailedToInsert = "failed to insert data into database"
	ErrDevDBFailedToUpdate = "failed to update data in database"
	ErrDevDBFailedToDelete = "failed to delete data from database"
	ErrDevDBFailedToScan   = "failed to scan database row"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data in redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq queue %s"

	ErrDevSMTPSendEmail = "failed to send email through smtp host %s"

	ErrDevMinioCreateObject  = "failed to store object in bucket %s"
	ErrDevMinioPresignObject = "failed to presign object in bucket %s"

	ErrDevGatewayCreateLink = "payment gateway refused to create checkout link"
	ErrDevGatewayGetLink    = "payment gateway refused to report checkout link"
	ErrDevOrderCodeExhausted = "could not generate a unique order code"

	ErrDevTemplateNotFound = "email template %s not found"
	ErrDevTemplateRender   = "failed to render email template %s"

	ErrDevAttachmentFileMissing = "multipart form carries no file field"
	ErrDevAttachmentTooLarge    = "multipart form exceeds the upload size limit"
)
