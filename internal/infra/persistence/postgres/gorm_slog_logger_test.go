package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"petwelfare/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database.SlowQueryThreshold = 100 * time.Millisecond

	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger), &buf
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "adoption_pets" WHERE status = 'available'`, 3
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "fast query hidden outside debug", elapsed: time.Millisecond},
		{name: "fast query shown in debug", debug: true, elapsed: time.Millisecond, want: "GORM query"},
		{name: "slow query", elapsed: 300 * time.Millisecond, want: "GORM slow query"},
		{name: "failed query", elapsed: time.Millisecond, err: sql.ErrConnDone, want: "GORM query failed"},
		{name: "record not found is expected", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "duplicate key is translated upstream", elapsed: time.Millisecond, err: gorm.ErrDuplicatedKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestGormLogger(tt.debug)
			l.Trace(ctx, time.Now().Add(-tt.elapsed), sqlAndRows, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), `"msg":"`+tt.want+`"`)
			assert.Contains(t, buf.String(), "adoption_pets")
		})
	}
}

func TestPoolMonitor_Report(t *testing.T) {
	var buf bytes.Buffer
	m := poolMonitor{
		logger:   slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		warnWait: 50 * time.Millisecond,
	}

	m.report(context.Background(), sql.DBStats{WaitCount: 4}, sql.DBStats{WaitCount: 4})
	assert.Empty(t, buf.String())

	m.report(context.Background(), sql.DBStats{WaitCount: 4}, sql.DBStats{WaitCount: 6, WaitDuration: 120 * time.Millisecond})
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":2`)
}
