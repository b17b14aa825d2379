package entity

import "time"

// Notification is a message sent from one user to another, persisted so the
// receiver can read it later. Delivery as a push message is best-effort and
// separate from the stored row.
type Notification struct {
	ID             int64     // Numeric identity assigned by the database.
	SenderUserID   int64     // User ID of the sender.
	ReceiverUserID int64     // User ID of the receiver.
	Message        string    // Notification body.
	Date           time.Time // When the notification was sent.
}
