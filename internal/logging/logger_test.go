package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewJSONLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(Config{Level: "debug", Format: FormatJSON}, &buf)
	require.NoError(t, err)

	logger.Info("ritual completed", zap.String("ritual_id", "reality-check-hands"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ritual completed", line["msg"])
	assert.Equal(t, "reality-check-hands", line["ritual_id"])
	assert.Contains(t, line, "ts")
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(Config{Level: "warn", Format: FormatConsole}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "default", cfg: DefaultConfig()},
		{name: "bad level", cfg: Config{Level: "loud", Format: FormatJSON}, wantErr: "invalid log level"},
		{name: "bad format", cfg: Config{Level: "info", Format: "xml"}, wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	logger := zap.NewExample()
	assert.Same(t, logger, OrNop(logger))
}
