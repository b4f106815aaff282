package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeSchedule    NotificationType = "schedule"
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypePayment     NotificationType = "payment"
	NotificationTypeSystem      NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Type      NotificationType `json:"type"`
	CreatedBy *string          `json:"created_by,omitempty"`
	IsGlobal  bool             `json:"is_global"`
	CreatedAt time.Time        `json:"created_at"`
}

// ReceivedNotification is a notification joined with one receiver's read
// state, as listed on a user's feed.
type ReceivedNotification struct {
	Notification
	IsRead bool `json:"is_read"`
}

// NotificationReceiver is the per-user delivery record tracking read state.
type NotificationReceiver struct {
	NotificationID string     `json:"notification_id"`
	ReceiverID     string     `json:"receiver_id"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}
