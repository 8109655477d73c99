package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/service"
	mocks "petwelfare/internal/mocks/usecase"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, event *service.NotificationEvent, attrs map[string]string) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/notifications"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.NotificationEvent{
		EventID: "evt-1",
		Kind:    entity.NotificationApplicationStatus,
		UserIDs: []string{"8b0c7a8e-8f55-4e38-bd0c-30c3f6b2b5c1"},
		Title:   "Application approved",
		Body:    "Your adoption application was approved",
		Data:    map[string]string{"applicationId": "a-1"},
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(m *mocks.MockNotificationDispatchUsecase)
		wantStatus int
	}{
		{
			name: "dispatches decoded event",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setupMock: func(m *mocks.MockNotificationDispatchUsecase) {
				m.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(ev *usecase.DispatchEvent) bool {
					return ev.EventID == "evt-1" && len(ev.UserIDs) == 1 && ev.Data["applicationId"] == "a-1"
				})).Return(&usecase.DispatchResult{Devices: 2, Sent: 2}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "retryable failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setupMock: func(m *mocks.MockNotificationDispatchUsecase) {
				m.EXPECT().Dispatch(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(usecase.ErrDispatchRetryable, "device lookup")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "permanent failure is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setupMock: func(m *mocks.MockNotificationDispatchUsecase) {
				m.EXPECT().Dispatch(mock.Anything, mock.Anything).
					Return(nil, errors.New("bad recipients")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid json",
			body:       func(t *testing.T) string { return "{" },
			setupMock:  func(m *mocks.MockNotificationDispatchUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       func(t *testing.T) string { return `{"message":{"data":"%%%"}}` },
			setupMock:  func(m *mocks.MockNotificationDispatchUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "payload is not an event",
			body: func(t *testing.T) string {
				data := base64.StdEncoding.EncodeToString([]byte("not-json"))

				return `{"message":{"data":"` + data + `"}}`
			},
			setupMock:  func(m *mocks.MockNotificationDispatchUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := mocks.NewMockNotificationDispatchUsecase(t)
			tt.setupMock(dispatcher)

			h := &PushHandler{logger: slog.Default(), dispatcher: dispatcher}
			c, rec := newPushContext(tt.body(t))

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	dispatcher := mocks.NewMockNotificationDispatchUsecase(t)
	h := &PushHandler{
		verifyPushAuth: true,
		verifyToken: func(*http.Request) error {
			return errors.New("missing authorization header")
		},
		logger:     slog.Default(),
		dispatcher: dispatcher,
	}

	c, rec := newPushContext(pushBody(t, &service.NotificationEvent{EventID: "evt-2"}, nil))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h := &PushHandler{logger: slog.Default()}

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	event := &service.NotificationEvent{RequestID: "from-event"}

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Equal(t, "from-attr", h.extractRequestID(req.Context(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(req.Context(), &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(req.Context(), &msg, event))
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Error(t, verifyPubSubToken(req))
}
