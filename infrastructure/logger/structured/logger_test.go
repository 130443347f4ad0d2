package structured

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsgrid/core/interfaces"
)

var _ interfaces.Logger = (*Logger)(nil)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "debug"},
		{"WARN", "warning"},
		{" error ", "error"},
		{"", "info"},
		{"chatty", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			logger := New(Options{Level: tt.input, Output: &bytes.Buffer{}})
			assert.Equal(t, tt.expected, logger.Level())
		})
	}
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "debug", Format: FormatJSON, Output: &buf})

	logger.Info("Fetch cycle completed", map[string]interface{}{
		"page":     2,
		"articles": 9,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Fetch cycle completed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(2), entry["page"])
	assert.Equal(t, float64(9), entry["articles"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Output: &buf})

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warn("visible warn", map[string]interface{}{"branch": "regional"})
	logger.Error("visible error", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
	assert.Contains(t, out, "branch=regional")
	assert.Contains(t, out, "visible error")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
