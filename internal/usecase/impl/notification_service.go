package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "sippec/internal/delivery/context"
	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	"sippec/internal/domain/service"
	"sippec/internal/usecase"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pushSender       service.PushSender
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	PushSender       service.PushSender `optional:"true"`
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService. The
// push sender is optional; without it notifications are stored only.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		pushSender:       params.PushSender,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send persists the notification and then attempts best-effort push
// delivery. Push failures are logged, never surfaced: the stored row is the
// source of truth.
func (srv *notificationService) Send(ctx context.Context, input *usecase.SendNotificationInput) (*entity.Notification, error) {
	receiver, err := srv.userRepo.FindByID(ctx, input.ReceiverUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("notification receiver does not exist")
		}

		return nil, errors.Wrap(err, "failed to check notification receiver")
	}

	sender, err := srv.userRepo.FindByID(ctx, input.SenderUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("notification sender does not exist")
		}

		return nil, errors.Wrap(err, "failed to check notification sender")
	}

	sentAt := input.Date
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	notification := &entity.Notification{
		SenderUserID:   input.SenderUserID,
		ReceiverUserID: input.ReceiverUserID,
		Message:        input.Message,
		Date:           sentAt,
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	srv.pushToReceiver(ctx, sender, receiver, notification)

	return notification, nil
}

func (srv *notificationService) pushToReceiver(ctx context.Context, sender, receiver *entity.User, notification *entity.Notification) {
	if srv.pushSender == nil || receiver.DeviceToken == "" {
		return
	}

	data := map[string]string{
		"notificationId": strconv.FormatInt(notification.ID, 10),
	}
	err := srv.pushSender.Send(ctx, receiver.DeviceToken, sender.FullName(), notification.Message, data)
	if err != nil {
		srv.log(ctx).Warn("Push delivery failed",
			slog.Int64("notificationID", notification.ID),
			slog.Int64("receiverID", receiver.ID),
			slog.Any("error", err))
	}
}

// List retrieves every notification.
func (srv *notificationService) List(ctx context.Context) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}
