package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	"sippec/internal/infra/persistence/model"
)

// notificationRepository implements the domain.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID

	return nil
}

// FindAll retrieves every notification, newest first.
func (repo *notificationRepository) FindAll(ctx context.Context) ([]*entity.Notification, error) {
	var models []model.NotificationModel
	if err := repo.db.WithContext(ctx).Order("date DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, toNotificationDomain(&models[i]))
	}

	return notifications, nil
}

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:             data.ID,
		SenderUserID:   data.SenderUserID,
		ReceiverUserID: data.ReceiverUserID,
		Message:        data.Message,
		Date:           data.Date,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:             data.ID,
		SenderUserID:   data.SenderUserID,
		ReceiverUserID: data.ReceiverUserID,
		Message:        data.Message,
		Date:           data.Date,
	}
}
