package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogrusLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLogger(&buf, "debug")

	log.Info("funds added", map[string]interface{}{
		"product_id": "prod1",
		"amount":     5000.0,
	})

	var record map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &record)
	assert.NoError(t, err)
	assert.Equal(t, "funds added", record["msg"])
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "prod1", record["product_id"])
	assert.Equal(t, 5000.0, record["amount"])
}

func TestLogrusLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLogger(&buf, "warn")

	log.Debug("should be dropped", nil)
	log.Info("should be dropped too", nil)
	assert.Empty(t, buf.String())

	log.Warn("kept", nil)
	assert.Contains(t, buf.String(), "kept")
}

func TestLogrusLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLogger(&buf, "info")

	reqLog := log.WithField("request_id", "req-1").WithFields(map[string]interface{}{
		"path": "/wallet",
	})
	reqLog.Info("request received", nil)

	var record map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &record)
	assert.NoError(t, err)
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "/wallet", record["path"])

	// The base logger context is unchanged
	buf.Reset()
	log.Info("plain", nil)
	assert.NotContains(t, buf.String(), "req-1")
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLogger(&buf, "nonsense")

	log.Debug("dropped", nil)
	assert.Empty(t, buf.String())

	log.Info("kept", nil)
	assert.Contains(t, buf.String(), "kept")
}
