package service

import "context"

// PushSender sends a push notification to a single registered device.
// Implementations are best-effort transports; persistence of the underlying
// notification is handled elsewhere.
type PushSender interface {
	// Send delivers a push message to the device identified by token.
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
