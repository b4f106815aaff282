package constvars

const (
	EmailNewScheduleSubject         = "[CLINICARE] New Work Schedule Assigned"
	EmailAppointmentReminderSubject = "[CLINICARE] Appointment Reminder"
	EmailPaymentReceiptSubject      = "[CLINICARE] Payment Received"
)

const (
	EmailTemplateNewSchedule         = "new_schedule.html"
	EmailTemplateAppointmentReminder = "appointment_reminder.html"
	EmailTemplatePaymentReceipt      = "payment_receipt.html"
	EmailTemplateNotification        = "notification.html"
)

const (
	// Where template files are looked up, relative to the working directory.
	EmailTemplateDir = "templates"
)

const (
	EmailSendBasicFormat = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)
