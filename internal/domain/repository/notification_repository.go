package repository

import (
	"context"

	"sippec/internal/domain/entity"
)

// NotificationRepository defines the operations for notification persistence.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindAll retrieves every notification.
	FindAll(ctx context.Context) ([]*entity.Notification, error)
}
