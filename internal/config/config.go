// Package config загружает конфигурацию ufe из переменных окружения UFE_*
// и необязательного YAML-файла (UFE_CONFIG_PATH).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath — переменная окружения с путём к файлу конфигурации.
const EnvConfigPath = "UFE_CONFIG_PATH"

// Режимы цветного вывода.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config содержит конфигурацию приложения.
// Значения из переменных окружения переопределяют значения из файла.
type Config struct {
	// Command — имя выполняемой команды (explain, converters, db-check, version, help).
	Command string `yaml:"command" env:"UFE_COMMAND"`

	// Input — путь к проверяемому документу (YAML или JSON).
	Input string `yaml:"input" env:"UFE_INPUT"`

	// Schema — путь к JSON-схеме документа. Необязательно.
	Schema string `yaml:"schema" env:"UFE_SCHEMA"`

	Explain  ExplainConfig  `yaml:"explain"`
	Output   OutputConfig   `yaml:"output"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`

	// Path — путь к файлу, из которого загружена конфигурация. Пусто, если файла не было.
	Path string `yaml:"-"`
}

// OutputConfig содержит настройки вывода результата команды.
type OutputConfig struct {
	// Format — "text" или "json".
	Format string `yaml:"format" env:"UFE_OUTPUT_FORMAT" env-default:"text"`

	// Color — "auto", "always" или "never".
	Color string `yaml:"color" env:"UFE_COLOR" env-default:"auto"`
}

// Load загружает конфигурацию. Если задан UFE_CONFIG_PATH, сначала читается файл.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(EnvConfigPath))
}

// LoadFrom загружает конфигурацию из файла path (YAML или JSON по расширению)
// с переопределением из окружения. Пустой path означает только окружение.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", path, err)
		}
		cfg.Path = path
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("не удалось прочитать переменные окружения в Config: %w", err)
	}

	cfg.Command = strings.TrimSpace(cfg.Command)
	return &cfg, nil
}

// Validate проверяет конфигурацию и возвращает первую найденную ошибку.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("output: неизвестный формат %q (ожидается text или json)", c.Output.Format)
	}
	switch strings.ToLower(c.Output.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output: неизвестный режим цвета %q (ожидается auto, always или never)", c.Output.Color)
	}
	if err := c.Explain.validate(); err != nil {
		return err
	}
	if err := c.Logging.validate(); err != nil {
		return err
	}
	if err := c.Database.validate(); err != nil {
		return err
	}
	if err := c.Metrics.validate(); err != nil {
		return err
	}
	return c.Tracing.validate()
}

// UseColor сообщает, нужно ли раскрашивать текстовый вывод.
// В режиме auto решение принимается по isTerminal.
func (c *Config) UseColor(isTerminal bool) bool {
	switch strings.ToLower(c.Output.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
