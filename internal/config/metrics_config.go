package config

import (
	"fmt"
	"time"
)

// MetricsConfig содержит настройки для Prometheus метрик.
type MetricsConfig struct {
	// Enabled — включены ли метрики (по умолчанию false).
	Enabled bool `yaml:"enabled" env:"UFE_METRICS_ENABLED" env-default:"false"`

	// PushgatewayURL — URL Prometheus Pushgateway.
	// Пример: "http://pushgateway:9091"
	PushgatewayURL string `yaml:"pushgatewayUrl" env:"UFE_METRICS_PUSHGATEWAY_URL"`

	// JobName — имя job для группировки метрик.
	JobName string `yaml:"jobName" env:"UFE_METRICS_JOB_NAME" env-default:"ufe"`

	// Timeout — таймаут HTTP запросов к Pushgateway.
	Timeout time.Duration `yaml:"timeout" env:"UFE_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel — переопределение instance label.
	// Если пусто — используется hostname.
	InstanceLabel string `yaml:"instanceLabel" env:"UFE_METRICS_INSTANCE"`
}

func (m MetricsConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	if m.PushgatewayURL == "" {
		return fmt.Errorf("metrics: pushgateway_url обязателен при enabled=true")
	}
	if m.Timeout <= 0 {
		return fmt.Errorf("metrics: timeout должен быть положительным")
	}
	return nil
}
