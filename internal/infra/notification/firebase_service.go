// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import (
	"context"

	"regain/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// multicastLimit is FCM's per-request token ceiling.
const multicastLimit = 500

type fcmService struct {
	client *messaging.Client
}

// NewFirebaseService builds an FCM-backed notification service from a service
// account credentials file.
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create messaging client")
	}

	return &fcmService{client: client}, nil
}

// SendSingleNotification pushes one message to one device token.
func (s *fcmService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification pushes one message to many device tokens, splitting
// into multicast requests under the FCM limit. Tokens FCM reports as invalid
// or unregistered are returned so callers can drop the stale devices.
func (s *fcmService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += multicastLimit {
		end := min(start+multicastLimit, len(tokens))
		chunk := tokens[start:end]

		resp, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: &messaging.Notification{Title: title, Body: body},
			Data:         data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += resp.SuccessCount
		failureCount += resp.FailureCount

		for idx, sendResp := range resp.Responses {
			if sendResp.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResp.Error) || messaging.IsUnregistered(sendResp.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
