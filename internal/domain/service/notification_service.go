package service

import "context"

// NotificationService pushes messages to registered devices.
type NotificationService interface {
	// SendBatchNotification fans one message out to many device tokens.
	// invalidTokens lists tokens the provider rejected as stale; callers
	// should remove the matching devices.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification pushes one message to one device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
