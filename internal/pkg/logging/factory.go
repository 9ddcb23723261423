package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Kargones/ufe/internal/constants"
)

// NewLogger создаёт Logger по конфигурации.
// Неизвестный Output или пустой FilePath приводят к выводу в stderr с предупреждением.
func NewLogger(config Config) Logger {
	var w io.Writer
	switch strings.ToLower(config.Output) {
	case OutputFile:
		w = newLumberjackWriter(config)
	case OutputStderr, "":
		w = os.Stderr
	default:
		_, _ = fmt.Fprintf(os.Stderr, "WARNING: неизвестный logging output %q, используется stderr\n", config.Output) //nolint:errcheck // bootstrap stderr
		w = os.Stderr
	}
	return NewLoggerWithWriter(config, w)
}

func newLumberjackWriter(config Config) io.Writer {
	if config.FilePath == "" {
		_, _ = os.Stderr.WriteString("WARNING: logging output=file, но путь к файлу пуст, используется stderr\n") //nolint:errcheck // bootstrap stderr
		return os.Stderr
	}

	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermStandard); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "WARNING: не удалось создать директорию логов %q: %v, используется stderr\n", dir, err) //nolint:errcheck // bootstrap stderr
			return os.Stderr
		}
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}

// NewLoggerWithWriter создаёт Logger, пишущий в w. Используется в тестах.
func NewLoggerWithWriter(config Config, w io.Writer) Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(config.Level)}

	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return NewSlogAdapter(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
