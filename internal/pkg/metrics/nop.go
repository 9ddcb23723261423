package metrics

import (
	"context"
	"time"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// NopCollector — no-op реализация Collector.
// Используется когда метрики отключены (Config.Enabled = false).
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

func (c *NopCollector) RecordCommandStart(_ string) {}

func (c *NopCollector) RecordCommandEnd(_ string, _ time.Duration, _ bool) {}

func (c *NopCollector) RecordExplanation(_ string, _ ufe.UserFacingError) {}

func (c *NopCollector) Push(_ context.Context) error {
	return nil
}
