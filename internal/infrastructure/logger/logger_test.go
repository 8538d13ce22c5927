package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrorWritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", &buf)

	LogError(For("usecase.budget"), "AddItem", map[string]string{"budget_id": "b1"}, errors.New("boom"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "usecase.budget", line["component"])
	assert.Equal(t, "AddItem", line["funcName"])
	assert.Equal(t, "boom", line["msg"])
	assert.Equal(t, "error", line["level"])
}

func TestConfigureUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := Configure("chatty", &buf)
	assert.Equal(t, "info", l.GetLevel().String())
}
