package config

import (
	"fmt"
	"strings"

	"github.com/Kargones/ufe/internal/pkg/logging"
)

// LoggingConfig содержит настройки для логирования.
type LoggingConfig struct {
	// Level - уровень логирования (debug, info, warn, error)
	Level string `yaml:"level" env:"UFE_LOG_LEVEL" env-default:"info"`

	// Format - формат логов (json, text)
	Format string `yaml:"format" env:"UFE_LOG_FORMAT" env-default:"text"`

	// Output - вывод логов (stderr, file)
	Output string `yaml:"output" env:"UFE_LOG_OUTPUT" env-default:"stderr"`

	// FilePath - путь к файлу логов (если output=file)
	FilePath string `yaml:"filePath" env:"UFE_LOG_FILE_PATH" env-default:"/var/log/ufe.log"`

	// MaxSize - максимальный размер файла лога в MB
	MaxSize int `yaml:"maxSize" env:"UFE_LOG_MAX_SIZE" env-default:"100"`

	// MaxBackups - максимальное количество backup файлов
	MaxBackups int `yaml:"maxBackups" env:"UFE_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge - максимальный возраст backup файлов в днях
	MaxAge int `yaml:"maxAge" env:"UFE_LOG_MAX_AGE" env-default:"7"`

	// Compress - сжимать ли backup файлы.
	// TODO: env-default:"true" перекрывает явное compress: false из YAML,
	// отключить сжатие сейчас можно только через UFE_LOG_COMPRESS=false.
	Compress bool `yaml:"compress" env:"UFE_LOG_COMPRESS" env-default:"true"`
}

func (l LoggingConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("logging: неизвестный уровень %q", l.Level)
	}
	switch strings.ToLower(l.Output) {
	case logging.OutputStderr:
	case logging.OutputFile:
		if l.FilePath == "" {
			return fmt.Errorf("logging: file path обязателен при output=file")
		}
	default:
		return fmt.Errorf("logging: неизвестный output %q", l.Output)
	}
	return nil
}

// ToLogging переносит настройки в logging.Config.
// Пустые и неположительные значения заменяются значениями по умолчанию.
func (l LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	if l.Level != "" {
		cfg.Level = l.Level
	}
	if l.Format != "" {
		cfg.Format = l.Format
	}
	if l.Output != "" {
		cfg.Output = l.Output
	}
	if l.FilePath != "" {
		cfg.FilePath = l.FilePath
	}
	if l.MaxSize > 0 {
		cfg.MaxSize = l.MaxSize
	}
	if l.MaxBackups > 0 {
		cfg.MaxBackups = l.MaxBackups
	}
	if l.MaxAge > 0 {
		cfg.MaxAge = l.MaxAge
	}
	cfg.Compress = l.Compress
	return cfg
}
