package domain

import "time"

type NotificationType string

const (
	NotificationTypeOrder  NotificationType = "order"
	NotificationTypeSystem NotificationType = "system"
)

// Notification is created only as a side effect of workflow transitions
// and never mutates except the read flag.
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Message   string
	Read      bool
	CreatedAt time.Time
}
