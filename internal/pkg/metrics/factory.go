package metrics

import (
	"github.com/Kargones/ufe/internal/pkg/logging"
)

// NewCollector создаёт Collector на основе конфигурации.
// Если metrics отключены (Config.Enabled = false) — возвращает NopCollector.
func NewCollector(config Config, logger logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	return NewPrometheusCollector(config, logger)
}
