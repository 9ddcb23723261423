package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, OutputStderr, cfg.Output)
	assert.Equal(t, "/var/log/ufe.log", cfg.FilePath)
	assert.True(t, cfg.Compress)
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{LevelDebug, true, true, true},
		{LevelInfo, false, true, true},
		{"WARN", false, false, true},
		{LevelError, false, false, false},
		{"неизвестный", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(Config{Level: tt.level, Format: FormatText}, &buf)

			logger.Debug("debug-msg")
			logger.Info("info-msg")
			logger.Warn("warn-msg")
			logger.Error("error-msg")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug-msg"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info-msg"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "warn-msg"))
			assert.Contains(t, out, "error-msg")
		})
	}
}

func TestNewLoggerWithWriter_JSONOutput_ValidJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Level: LevelInfo, Format: "JSON"}, &buf)

	logger.Info("реестр заморожен", "converters", 13)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "каждая запись должна быть валидным JSON")
	assert.Equal(t, "реестр заморожен", entry["msg"])
	assert.Equal(t, float64(13), entry["converters"])
}

func TestNewLogger_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "dir", "ufe.log")

	logger := NewLogger(Config{
		Level:    LevelInfo,
		Format:   FormatJSON,
		Output:   OutputFile,
		FilePath: logFile,
		MaxSize:  1,
	})
	logger.Info("команда выполнена", "command", "explain")

	content, err := os.ReadFile(logFile) //nolint:gosec // путь из t.TempDir()
	require.NoError(t, err, "файл лога и его директории должны быть созданы")
	assert.Contains(t, string(content), "команда выполнена")
	assert.Contains(t, string(content), "explain")
}

func TestNewLogger_FallbackToStderr(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"пустой путь к файлу", Config{Output: OutputFile}},
		{"неизвестный output", Config{Output: "syslog"}},
		{"пустой output", Config{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewLogger(tt.config))
		})
	}
}

func TestNewLumberjackWriter_Settings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ufe.log")
	w := newLumberjackWriter(Config{FilePath: path, MaxSize: 10, MaxBackups: 2, MaxAge: 3, Compress: true})

	lj, ok := w.(interface{ Close() error })
	require.True(t, ok, "должен вернуться lumberjack.Logger")
	assert.NoError(t, lj.Close())
	assert.Equal(t, os.Stderr, newLumberjackWriter(Config{}))
}
