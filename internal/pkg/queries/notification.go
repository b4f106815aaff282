package queries

const (
	InsertNotification = `
		INSERT INTO notifications (
			id,
			title,
			content,
			type,
			created_by,
			is_global,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	InsertNotificationReceiver = `
		INSERT INTO notification_receivers (
			notification_id,
			receiver_id,
			is_read
		) VALUES ($1, $2, FALSE)
	`

	GetNotificationsByReceiver = `
		SELECT
			n.id,
			n.title,
			n.content,
			n.type,
			nr.is_read,
			n.created_at
		FROM notifications n
		JOIN notification_receivers nr ON nr.notification_id = n.id
		WHERE nr.receiver_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2 OFFSET $3
	`

	CountNotificationsByReceiver = `
		SELECT COUNT(1)
		FROM notification_receivers
		WHERE receiver_id = $1
	`

	CountUnreadByReceiver = `
		SELECT COUNT(1)
		FROM notification_receivers
		WHERE receiver_id = $1 AND is_read = FALSE
	`

	MarkNotificationRead = `
		UPDATE notification_receivers
		SET is_read = TRUE, read_at = NOW()
		WHERE notification_id = $1 AND receiver_id = $2 AND is_read = FALSE
	`

	CountReceiverRow = `
		SELECT COUNT(1)
		FROM notification_receivers
		WHERE notification_id = $1 AND receiver_id = $2
	`

	MarkAllNotificationsRead = `
		UPDATE notification_receivers
		SET is_read = TRUE, read_at = NOW()
		WHERE receiver_id = $1 AND is_read = FALSE
	`
)
