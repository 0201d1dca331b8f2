package domain

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationWarning NotificationType = "WARNING"
	NotificationError   NotificationType = "ERROR"

	NotificationRequestSent      NotificationType = "PRODUCT_REQUEST_SENT"
	NotificationRequestAccepted  NotificationType = "PRODUCT_REQUEST_ACCEPTED"
	NotificationRequestRejected  NotificationType = "PRODUCT_REQUEST_REJECTED"
	NotificationRequestCancelled NotificationType = "PRODUCT_REQUEST_CANCELLED"
)

// Notification is a persisted message for a shopkeeper, also pushed over the
// live channel when one is connected.
type Notification struct {
	ID              string
	Type            NotificationType
	Message         string
	Link            string
	IsRead          bool
	SenderID        string // empty for system notifications
	ReceiverID      string
	RelatedEntityID string
	ExpiresAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
