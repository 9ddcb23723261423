package logging

// Logger — интерфейс логирования приложения.
// Аргументы args — пары ключ/значение в стиле slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает логгер с дополнительными атрибутами.
	With(args ...any) Logger
}
