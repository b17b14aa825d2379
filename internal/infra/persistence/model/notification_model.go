package model

import "time"

// NotificationModel mirrors the 'notifications' table. Sender and receiver
// reference users.id.
type NotificationModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	SenderUserID   int64     `gorm:"column:sender_id;not null;index"`
	ReceiverUserID int64     `gorm:"column:receiver_id;not null;index"`
	Message        string    `gorm:"type:text;not null"`
	Date           time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
