package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gatekeeper/config"
)

func TestGormSlogLogger_LevelFromConfig(t *testing.T) {
	cfg := &config.Config{}
	l := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Warn, l.level)

	cfg.Env.Log.Level = "DEBUG"
	l = newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, l.level)
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), nil).(*gormSlogLogger)

	sql, params := l.ParamsFilter(context.Background(), "UPDATE principals SET password_hash = $1", "$argon2id$v=19$...")
	assert.Equal(t, "UPDATE principals SET password_hash = $1", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil)
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is expected")

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "database query failed")
	assert.Contains(t, buf.String(), "component=gorm")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "database slow query")
}
