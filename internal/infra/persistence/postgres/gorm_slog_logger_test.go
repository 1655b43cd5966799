package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"pixelforge/config"
	deliverycontext "pixelforge/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedSlog(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_LevelFollowsDebugFlag(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, logger.Warn, newGormSlogLogger(nil, cfg).(*gormSlogLogger).level)

	cfg.Env.Debug = true
	assert.Equal(t, logger.Info, newGormSlogLogger(nil, cfg).(*gormSlogLogger).level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("query errors are logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedSlog(&buf), &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedSlog(&buf), &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("unique violations are downgraded to warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedSlog(&buf), &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn("INSERT INTO users"), gorm.ErrDuplicatedKey)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "GORM constraint violation")
	})

	t.Run("request logger is used when present", func(t *testing.T) {
		var buf bytes.Buffer
		base := newBufferedSlog(&buf)
		l := newGormSlogLogger(base, &config.Config{})
		reqCtx := deliverycontext.WithLogger(ctx, base.With(slog.String("request_id", "req-42")))

		l.Trace(reqCtx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
		assert.Contains(t, buf.String(), "request_id=req-42")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedSlog(&buf), &config.Config{})

		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)"), nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries are silent at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedSlog(&buf), &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
		assert.Empty(t, buf.String())
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedSlog(&buf), &config.Config{}).LogMode(logger.Silent)

		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
