package service

import "context"

// NotificationService delivers alert pushes to parent phones.
type NotificationService interface {
	// SendBatchNotification sends one message to every token. invalidTokens
	// lists tokens the provider reported as unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
