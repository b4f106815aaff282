package responses

type SendNotification struct {
	NotificationID string `json:"notification_id"`
	ReceiverCount  int    `json:"receiver_count"`
}

type UserNotification struct {
	NotificationID string `json:"notification_id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Type           string `json:"type"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
}

type UnreadCount struct {
	Count int64 `json:"count"`
}

type MarkRead struct {
	Updated bool `json:"updated"`
}
