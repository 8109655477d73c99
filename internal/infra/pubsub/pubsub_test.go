package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"petwelfare/config"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/service"
)

func testEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		Kind:      entity.NotificationOrderStatus,
		UserIDs:   []string{"u1", "u2"},
		Title:     "Order shipped",
		Body:      "ORD-20260101-0001 is on its way",
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "order_status", received.Message.Attributes["kind"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishNotificationEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	testCases := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "unset", noop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tc.pubsub},
				Logger: slog.Default(),
			})
			if tc.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tc.noop, isNoop)
			if tc.noop {
				assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))
			}
		})
	}
}

func TestSplitRecipients(t *testing.T) {
	event := testEvent()

	assert.Equal(t, []*service.NotificationEvent{event}, splitRecipients(event, 2))

	event.UserIDs = []string{"u1", "u2", "u3", "u4", "u5"}
	parts := splitRecipients(event, 2)
	require.Len(t, parts, 3)
	assert.Equal(t, "evt-1#1", parts[0].EventID)
	assert.Equal(t, []string{"u5"}, parts[2].UserIDs)
	assert.Equal(t, event.Title, parts[1].Title)
	assert.Equal(t, "evt-1", event.EventID, "original is untouched")
}
