package notification

import (
	"context"
	"strconv"
	"testing"

	"guardian/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnregistered = errors.New("requested entity was not found")

type fakeSender struct {
	batches   [][]string
	single    *messaging.Message
	failBatch bool
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.single = message

	return "projects/guardian/messages/1", nil
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.failBatch {
		return nil, errors.New("fcm unavailable")
	}
	f.batches = append(f.batches, message.Tokens)

	resp := &messaging.BatchResponse{}
	for _, token := range message.Tokens {
		if token == "stale" {
			resp.FailureCount++
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Error: errUnregistered})

			continue
		}
		resp.SuccessCount++
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true})
	}

	return resp, nil
}

func newTestService(sender *fakeSender) *firebaseService {
	return &firebaseService{
		sender:  sender,
		isStale: func(err error) bool { return errors.Is(err, errUnregistered) },
	}
}

func TestSendBatchNotification_ChunksAndCollectsStaleTokens(t *testing.T) {
	tokens := make([]string, 0, fcmBatchLimit+2)
	for i := range fcmBatchLimit + 1 {
		tokens = append(tokens, "token-"+strconv.Itoa(i))
	}
	tokens = append(tokens, "stale")

	sender := &fakeSender{}
	sent, failed, stale, err := newTestService(sender).
		SendBatchNotification(context.Background(), tokens, "Geofence", "Alex left School", map[string]string{"alert_id": "a1"})

	require.NoError(t, err)
	require.Len(t, sender.batches, 2)
	assert.Len(t, sender.batches[0], fcmBatchLimit)
	assert.Len(t, sender.batches[1], 2)
	assert.Equal(t, fcmBatchLimit+1, sent)
	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"stale"}, stale)
}

func TestSendBatchNotification_Empty(t *testing.T) {
	sender := &fakeSender{}
	sent, failed, stale, err := newTestService(sender).SendBatchNotification(context.Background(), nil, "t", "b", nil)

	require.NoError(t, err)
	assert.Zero(t, sent+failed)
	assert.Empty(t, stale)
	assert.Empty(t, sender.batches)
}

func TestSendBatchNotification_TransportError(t *testing.T) {
	_, _, _, err := newTestService(&fakeSender{failBatch: true}).
		SendBatchNotification(context.Background(), []string{"a"}, "t", "b", nil)

	assert.ErrorContains(t, err, "fcm unavailable")
}

func TestSendSingleNotification_HighPriority(t *testing.T) {
	sender := &fakeSender{}
	require.NoError(t, newTestService(sender).SendSingleNotification(context.Background(), "tok", "SOS", "Sam needs help", nil))

	require.NotNil(t, sender.single)
	assert.Equal(t, "tok", sender.single.Token)
	assert.Equal(t, "high", sender.single.Android.Priority)
	assert.Equal(t, "10", sender.single.APNS.Headers["apns-priority"])
}

func TestNewFirebaseService_DisabledWithoutCredentials(t *testing.T) {
	svc, err := NewFirebaseService(context.Background(), &config.Config{})

	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestStaleToken_IgnoresPlainErrors(t *testing.T) {
	assert.False(t, staleToken(errors.New("timeout")))
}
