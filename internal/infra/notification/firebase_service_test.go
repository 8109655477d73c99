package notification

import (
	"context"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petwelfare/config"
	"petwelfare/internal/domain/service"
)

type fakeSender struct {
	response *messaging.BatchResponse
	err      error
	got      *messaging.MulticastMessage
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = message

	return f.response, f.err
}

func TestFirebaseService_SendToTokens(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 2,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true},
			{Success: false, Error: assert.AnError},
			{Success: true},
		},
	}}
	svc := &firebaseService{client: sender, logger: slog.Default()}

	report, err := svc.SendToTokens(context.Background(), []string{"a", "b", "c"}, service.PushMessage{
		Title: "Application approved",
		Body:  "Your application for Bruno was approved",
		Data:  map[string]string{"applicationId": "app-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	// generic errors are not token problems
	assert.Empty(t, report.InvalidTokens)

	assert.Equal(t, []string{"a", "b", "c"}, sender.got.Tokens)
	assert.Equal(t, "Application approved", sender.got.Notification.Title)
	assert.Equal(t, "app-1", sender.got.Data["applicationId"])
	require.NotNil(t, sender.got.Android)
	assert.Equal(t, androidChannelID, sender.got.Android.Notification.ChannelID)
}

func TestFirebaseService_BatchLimits(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{}, logger: slog.Default()}

	report, err := svc.SendToTokens(context.Background(), nil, service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Zero(t, report.Sent+report.Failed)
	assert.Nil(t, report.InvalidTokens)

	_, err = svc.SendToTokens(context.Background(), make([]string, MaxBatchSize+1), service.PushMessage{Title: "t"})
	assert.Error(t, err)
}

func TestFirebaseService_ProviderError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: assert.AnError}, logger: slog.Default()}

	_, err := svc.SendToTokens(context.Background(), []string{"a"}, service.PushMessage{Title: "t"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNew_WithoutCredentialsLogsOnly(t *testing.T) {
	svc, err := New(Params{Ctx: context.Background(), Config: &config.Config{}, Logger: slog.Default()})
	require.NoError(t, err)

	report, err := svc.SendToTokens(context.Background(), []string{"a", "b"}, service.PushMessage{Title: "t", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.InvalidTokens)
}
