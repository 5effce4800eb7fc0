package entity

import "time"

const MaxNotificationMessageLength = 300

type Notification struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Preview shortens long messages for list rendering.
func (n *Notification) Preview() string {
	if len(n.Message) > 50 {
		return n.Message[:50] + "..."
	}
	return n.Message
}
