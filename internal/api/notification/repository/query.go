package notificationRepository

const (
	queryCreateNotification = `
		INSERT INTO notifications (
			id,
			user_id,
			message,
			is_read,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:message,
			:is_read,
			:created_at,
			:updated_at
		)
	`

	queryGetNotificationsByUserID = `
		SELECT
			id,
			user_id,
			message,
			is_read,
			created_at,
			updated_at
		FROM notifications
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryMarkRead = `
		UPDATE notifications
		SET
			is_read = TRUE,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryMarkAllRead = `
		UPDATE notifications
		SET
			is_read = TRUE,
			updated_at = :updated_at
		WHERE user_id = :user_id AND is_read = FALSE
	`

	queryDeleteNotification = `
		DELETE FROM notifications
		WHERE id = :id AND user_id = :user_id
	`

	queryClearAll = `
		DELETE FROM notifications
		WHERE user_id = :user_id
	`
)
