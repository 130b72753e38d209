package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormZapLogger_Trace(t *testing.T) {
	fc := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name      string
		level     gormlogger.LogLevel
		begin     time.Time
		err       error
		wantLevel zapcore.Level
		wantMsg   string
		wantLogs  int
	}{
		{name: "error", level: gormlogger.Warn, begin: time.Now(), err: errors.New("boom"),
			wantLevel: zapcore.ErrorLevel, wantMsg: "query error", wantLogs: 1},
		{name: "not found is not an error", level: gormlogger.Warn, begin: time.Now(), err: gorm.ErrRecordNotFound,
			wantLogs: 0},
		{name: "slow query", level: gormlogger.Warn, begin: time.Now().Add(-time.Second),
			wantLevel: zapcore.WarnLevel, wantMsg: "slow query", wantLogs: 1},
		{name: "info logs everything", level: gormlogger.Info, begin: time.Now(),
			wantLevel: zapcore.DebugLevel, wantMsg: "query", wantLogs: 1},
		{name: "silent", level: gormlogger.Silent, begin: time.Now(), err: errors.New("boom"), wantLogs: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			l := NewGormLogger(zap.New(core), tt.level)

			l.Trace(context.Background(), tt.begin, fc, tt.err)

			entries := logs.AllUntimed()
			if !assert.Len(t, entries, tt.wantLogs) || tt.wantLogs == 0 {
				return
			}
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Equal(t, tt.wantMsg, entries[0].Message)
			assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
		})
	}
}

func TestGormZapLogger_LogMode(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewGormLogger(zap.New(core), gormlogger.Silent)

	l.Warn(context.Background(), "hidden %d", 1)
	l.LogMode(gormlogger.Warn).Warn(context.Background(), "shown %d", 2)

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "shown 2", entries[0].Message)
	}
}
