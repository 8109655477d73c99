package worker

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petwelfare/config"
	"petwelfare/internal/delivery/worker/handler"
	mocks "petwelfare/internal/mocks/usecase"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterRoutes(t *testing.T) {
	dispatcher := mocks.NewMockNotificationDispatchUsecase(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:     &config.Config{},
		Logger:     slog.Default(),
		Dispatcher: dispatcher,
	})

	e := echo.New()
	registerRoutes(e, push)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"service":"eventworker"`)
	})

	event := `{"event_id":"evt-9","kind":"order_status","user_ids":["8b0c7a8e-8f55-4e38-bd0c-30c3f6b2b5c1"],"title":"t","body":"b"}`
	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(event)) + `","messageId":"m-9"}}`

	for _, path := range []string{"/push", "/push/notifications"} {
		t.Run(path, func(t *testing.T) {
			dispatcher.EXPECT().
				Dispatch(mock.Anything, mock.MatchedBy(func(ev *usecase.DispatchEvent) bool { return ev.EventID == "evt-9" })).
				Return(&usecase.DispatchResult{Devices: 1, Sent: 1}, nil).Once()

			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
