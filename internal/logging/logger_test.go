package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cargo-backend/internal/config"
)

func TestNew_JSONFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "debug"

	var buf bytes.Buffer
	log := NewWithOutput(cfg, &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("request_id", "abc").Info("hello")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "text"

	log := NewWithOutput(cfg, &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	_, ok := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestGormLogger_Trace(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	gl := NewGormLogger(NewWithOutput(cfg, &buf))

	fc := func() (string, int64) { return "SELECT 1", 1 }

	// record not found is not an error worth reporting
	gl.Trace(context.Background(), time.Now(), fc, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	gl.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	assert.Contains(t, buf.String(), "query failed")
	buf.Reset()

	gl.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
	assert.Contains(t, buf.String(), "slow query")
	buf.Reset()

	silent := gl.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	assert.Empty(t, buf.String())
}
