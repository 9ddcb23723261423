package di

import (
	"io"
	"time"

	"github.com/Kargones/ufe/internal/command"
	"github.com/Kargones/ufe/internal/config"
	"github.com/Kargones/ufe/internal/pkg/logging"
	"github.com/Kargones/ufe/internal/pkg/metrics"
	"github.com/Kargones/ufe/internal/pkg/output"
	"github.com/Kargones/ufe/internal/pkg/tracing"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// App содержит инициализированные зависимости приложения.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config передаётся извне через InitializeApp().
	Config *config.Config

	// Logger пишет в stderr или файл; stdout занят выводом команд.
	Logger logging.Logger

	// OutputWriter форматирует результаты команд по UFE_OUTPUT_FORMAT.
	OutputWriter output.Writer

	// TraceID — идентификатор запуска для корреляции логов, вывода и трассировки.
	TraceID string

	// Registry — замороженный реестр встроенных конвертеров.
	Registry *ufe.Registry

	// Explain — контекст объяснений (подробность, язык, реестр).
	Explain *ufe.Context

	// MetricsCollector — NopCollector, если метрики отключены.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает TracerProvider и отправляет буферизированные span-ы.
	// Если трейсинг отключён — nop function.
	TracerShutdown tracing.ShutdownFunc
}

// CommandEnv собирает окружение для выполнения команды.
func (a *App) CommandEnv(stdout io.Writer) *command.Env {
	return &command.Env{
		Config:  a.Config,
		Logger:  a.Logger,
		Writer:  a.OutputWriter,
		Metrics: a.MetricsCollector,
		Stdout:  stdout,
		Explain: a.Explain,
		TraceID: a.TraceID,
		Start:   time.Now(),
	}
}
