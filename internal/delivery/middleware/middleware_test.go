package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petwelfare/config"
	deliverycontext "petwelfare/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "client id reused", header: "gw-7f3a.1", wantKept: true},
		{name: "missing id generated", header: ""},
		{name: "unsafe id replaced", header: "abc\ninjected"},
		{name: "overlong id replaced", header: strings.Repeat("a", maxRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, seen, got)
			if tt.wantKept {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func newLoggerMiddleware(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg), &buf
}

func serve(m *LoggerMiddleware, path string, status int) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
	_ = m.Handle(func(c echo.Context) error {
		return c.NoContent(status)
	})(c)
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("debug logs successful requests", func(t *testing.T) {
		m, buf := newLoggerMiddleware(true)
		serve(m, "/api/modules", http.StatusOK)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("non debug keeps only failures", func(t *testing.T) {
		m, buf := newLoggerMiddleware(false)
		serve(m, "/api/modules", http.StatusOK)
		assert.Empty(t, buf.String())

		serve(m, "/api/adoption/pets/x", http.StatusNotFound)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("health checks are skipped", func(t *testing.T) {
		m, buf := newLoggerMiddleware(true)
		serve(m, "/health", http.StatusOK)
		assert.Empty(t, buf.String())
	})
}
