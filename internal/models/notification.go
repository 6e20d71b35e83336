package models

import "time"

type NotificationType string

const (
	NotifyQueueUpdate  NotificationType = "queue_update"
	NotifyStatusChange NotificationType = "status_change"
	NotifyReminder     NotificationType = "reminder"
	NotifyInfo         NotificationType = "info"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
