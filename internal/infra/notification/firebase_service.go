// Package notification sends alert pushes through Firebase Cloud Messaging.
package notification

import (
	"context"

	"guardian/config"
	"guardian/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmBatchLimit is the most tokens FCM accepts in one multicast call.
const fcmBatchLimit = 500

// fcmSender is the part of *messaging.Client the service uses.
type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	sender  fcmSender
	isStale func(error) bool
}

// NewFirebaseService returns nil without credentials; the dispatcher then
// records alerts without pushing them.
func NewFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	fb := cfg.Firebase
	if fb == nil || fb.CredentialsPath == "" {
		return nil, nil
	}

	var appCfg *firebase.Config
	if fb.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: fb.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(fb.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "init firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "init firebase messaging")
	}

	return &firebaseService{sender: client, isStale: staleToken}, nil
}

func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
		Android:      alertAndroid,
		APNS:         alertAPNS,
	}

	_, err := s.sender.Send(ctx, msg)

	return errors.Wrap(err, "fcm send")
}

// SendBatchNotification fans out in chunks of fcmBatchLimit. Tokens FCM
// reports as unregistered or malformed come back in invalidTokens so the
// caller can deactivate them.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	for start := 0; start < len(tokens); start += fcmBatchLimit {
		chunk := tokens[start:min(start+fcmBatchLimit, len(tokens))]

		resp, sendErr := s.sender.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: &messaging.Notification{Title: title, Body: body},
			Data:         data,
			Android:      alertAndroid,
			APNS:         alertAPNS,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "fcm multicast")
		}

		successCount += resp.SuccessCount
		failureCount += resp.FailureCount
		for i, r := range resp.Responses {
			if r.Error != nil && s.isStale(r.Error) {
				invalidTokens = append(invalidTokens, chunk[i])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

func staleToken(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

var (
	alertAndroid = &messaging.AndroidConfig{Priority: "high"}
	alertAPNS    = &messaging.APNSConfig{
		Headers: map[string]string{"apns-priority": "10"},
		Payload: &messaging.APNSPayload{Aps: &messaging.Aps{Sound: "default"}},
	}
)
