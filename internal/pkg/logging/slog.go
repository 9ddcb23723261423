package logging

import "log/slog"

// SlogAdapter реализует Logger поверх *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter оборачивает logger. nil заменяется на slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }

func (s *SlogAdapter) Info(msg string, args ...any) { s.logger.Info(msg, args...) }

func (s *SlogAdapter) Warn(msg string, args ...any) { s.logger.Warn(msg, args...) }

func (s *SlogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// With возвращает новый адаптер с атрибутами args.
func (s *SlogAdapter) With(args ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(args...)}
}

// Slog возвращает нижележащий *slog.Logger.
func (s *SlogAdapter) Slog() *slog.Logger {
	return s.logger
}
