package handler

import (
	"net/http"
	"time"

	"sippec/internal/delivery/http/response"
	"sippec/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

type sendNotificationRequest struct {
	SenderUserID   int64     `json:"sender_user_id" validate:"required"`
	ReceiverUserID int64     `json:"receiver_user_id" validate:"required"`
	Message        string    `json:"message" validate:"required"`
	Date           time.Time `json:"date"`
}

// Send handles the request to send a notification. The row is stored first;
// push delivery to the receiver's device is best-effort.
func (h *NotificationHandler) Send(c echo.Context) error {
	var input sendNotificationRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Sender, receiver and message are required")
	}

	notification, err := h.uc.Send(c.Request().Context(), &usecase.SendNotificationInput{
		SenderUserID:   input.SenderUserID,
		ReceiverUserID: input.ReceiverUserID,
		Message:        input.Message,
		Date:           input.Date,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentNotification(notification), "Notification sent")
}

// List handles the request to list every notification.
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentNotifications(notifications), "")
}
