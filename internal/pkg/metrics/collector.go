// Package metrics собирает метрики запусков ufe и отправляет их
// в Prometheus Pushgateway.
//
// При отключённых метриках используется NopCollector.
package metrics

import (
	"context"
	"time"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Collector определяет интерфейс для сбора метрик.
// Реализации: PrometheusCollector (активный) и NopCollector (no-op).
type Collector interface {
	// RecordCommandStart записывает начало выполнения команды.
	RecordCommandStart(command string)

	// RecordCommandEnd записывает завершение команды с результатом.
	RecordCommandEnd(command string, duration time.Duration, success bool)

	// RecordExplanation записывает размер и глубину построенного объяснения.
	RecordExplanation(command string, tree ufe.UserFacingError)

	// Push отправляет метрики в Pushgateway.
	// Все реализации возвращают nil: ошибки отправки только логируются.
	Push(ctx context.Context) error
}
