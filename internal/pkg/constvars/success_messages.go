package constvars

const (
	ResponseSuccess = "success"

	LoginSuccessMessage  = "Logged in successfully"
	LogoutSuccessMessage = "Logged out successfully"

	ScheduleCreatedMessage = "Schedule created successfully"
	ScheduleUpdatedMessage = "Schedule updated successfully"
	ShiftCreatedMessage    = "Shift created successfully"

	NotificationSentMessage     = "Notification sent successfully"
	NotificationMarkReadMessage = "Notification marked as read"

	PaymentCreatedMessage         = "Payment link created successfully"
	PaymentCallbackAcceptedMessage = "Payment callback accepted"

	AppointmentBookedMessage    = "Appointment booked successfully"
	AppointmentCancelledMessage = "Appointment cancelled successfully"

	MedicalRecordCreatedMessage = "Medical record created successfully"
	MedicalRecordUpdatedMessage = "Medical record updated successfully"
	MedicalRecordDeletedMessage = "Medical record deleted successfully"
)
