package domain

import "time"

// Notification kinds emitted by the payout engine.
const (
	NotificationPayoutCompleted = "payout_completed"
)

// Notification is a fire-and-forget message to a user, persisted for the
// delivery layer to pick up. Payload is an arbitrary JSON-serializable
// document describing the event.
type Notification struct {
	ID        string
	Recipient string
	Kind      string
	Payload   any
	CreatedAt time.Time
}
