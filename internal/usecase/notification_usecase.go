package usecase

import (
	"context"
	"time"

	"sippec/internal/domain/entity"
)

// SendNotificationInput defines the data required to send a notification.
// A zero Date means "now".
type SendNotificationInput struct {
	SenderUserID   int64
	ReceiverUserID int64
	Message        string
	Date           time.Time
}

// NotificationUsecase defines the interface for notification operations.
// Sending persists the notification and attempts best-effort push delivery
// to the receiver's registered device.
type NotificationUsecase interface {
	Send(ctx context.Context, input *SendNotificationInput) (*entity.Notification, error)
	List(ctx context.Context) ([]*entity.Notification, error)
}
