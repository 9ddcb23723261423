// Package logging предоставляет структурированное логирование поверх log/slog.
// Логи пишутся в stderr или в файл с ротацией; stdout остаётся за выводом команд.
package logging

// Форматы вывода логов.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Уровни логирования.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Назначения вывода логов.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию.
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/ufe.log"
	DefaultMaxSize    = 100 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// Config содержит настройки логгера.
type Config struct {
	// Format — "json" или "text".
	Format string

	// Level — "debug", "info", "warn" или "error".
	Level string

	// Output — "stderr" или "file".
	Output string

	// FilePath — путь к файлу при Output = "file".
	FilePath string

	// MaxSize, MaxBackups, MaxAge, Compress — параметры ротации lumberjack.
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}
