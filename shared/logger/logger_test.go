package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	InitializeTo(&buf, "info", true)
	t.Cleanup(func() { Initialize("info", false) })

	Component("pg").Info("connected", "dbname", "forum")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "pg", line["component"])
	assert.Equal(t, "connected", line["msg"])
	assert.Equal(t, "forum", line["dbname"])
}

func TestLevel(t *testing.T) {
	var buf bytes.Buffer
	InitializeTo(&buf, "warn", false)
	t.Cleanup(func() { Initialize("info", false) })

	Log.Info("hidden")
	assert.Zero(t, buf.Len())

	Log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
