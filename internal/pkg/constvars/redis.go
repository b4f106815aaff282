package constvars

const (
	RedisSessionKeyFormat     = "session:%s"
	RedisUnreadCountKeyFormat = "notification:unread_count:%s"
)
