package config

import (
	"fmt"
	"time"
)

// TracingConfig содержит настройки OpenTelemetry трейсинга.
type TracingConfig struct {
	// Enabled включает отправку трейсов в OTLP бэкенд.
	Enabled bool `yaml:"enabled" env:"UFE_TRACING_ENABLED" env-default:"false"`

	// Endpoint — URL OTLP HTTP endpoint (например, http://jaeger:4318).
	Endpoint string `yaml:"endpoint" env:"UFE_TRACING_ENDPOINT"`

	// ServiceName — имя сервиса для resource attributes.
	ServiceName string `yaml:"serviceName" env:"UFE_TRACING_SERVICE_NAME" env-default:"ufe"`

	// Environment — окружение (production, staging, development).
	Environment string `yaml:"environment" env:"UFE_TRACING_ENVIRONMENT" env-default:"production"`

	// Insecure — использовать HTTP вместо HTTPS для OTLP endpoint.
	Insecure bool `yaml:"insecure" env:"UFE_TRACING_INSECURE" env-default:"true"`

	// Timeout — таймаут для экспорта трейсов.
	Timeout time.Duration `yaml:"timeout" env:"UFE_TRACING_TIMEOUT" env-default:"5s"`

	// SamplingRate — доля сэмплируемых трейсов (0.0 — ни один, 1.0 — все).
	SamplingRate float64 `yaml:"samplingRate" env:"UFE_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

func (t TracingConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	if t.Endpoint == "" {
		return fmt.Errorf("tracing: endpoint обязателен при enabled=true")
	}
	if t.ServiceName == "" {
		return fmt.Errorf("tracing: service name обязателен при enabled=true")
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("tracing: timeout должен быть положительным")
	}
	if t.SamplingRate < 0.0 || t.SamplingRate > 1.0 {
		return fmt.Errorf("tracing: sampling rate должен быть от 0.0 до 1.0, получено: %g", t.SamplingRate)
	}
	return nil
}
