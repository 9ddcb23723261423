package di

import (
	"errors"
	"log/slog"

	"github.com/fatih/color"

	"github.com/Kargones/ufe/internal/config"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/converters"
	"github.com/Kargones/ufe/internal/pkg/logging"
	"github.com/Kargones/ufe/internal/pkg/metrics"
	"github.com/Kargones/ufe/internal/pkg/output"
	"github.com/Kargones/ufe/internal/pkg/tracing"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// errNilConfig возвращается InitializeApp при nil Config.
var errNilConfig = errors.New("di: config is nil")

// ProvideLogger создаёт Logger на основе секции logging.
// При nil Config используются значения по умолчанию (info, text, stderr).
func ProvideLogger(cfg *config.Config) logging.Logger {
	if cfg == nil {
		return logging.NewLogger(logging.DefaultConfig())
	}
	return logging.NewLogger(cfg.Logging.ToLogging())
}

// ProvideOutputWriter создаёт Writer по UFE_OUTPUT_FORMAT.
// В режиме UFE_COLOR=auto цвет включается, если stdout — терминал и NO_COLOR не задан
// (определяет fatih/color).
func ProvideOutputWriter(cfg *config.Config) output.Writer {
	if cfg == nil {
		return output.NewWriter(output.FormatText)
	}
	return output.NewWriter(cfg.Output.Format,
		output.WithColor(cfg.UseColor(!color.NoColor)),
		output.WithLanguage(cfg.Language()),
	)
}

// ProvideTraceID генерирует trace_id (32 hex-символа) один раз на запуск.
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideRegistry заполняет реестр встроенными конвертерами и замораживает его.
// После заморозки поиск конвертера идёт без блокировок.
func ProvideRegistry(logger logging.Logger) *ufe.Registry {
	r := ufe.NewRegistry()
	converters.RegisterAll(r)
	r.Freeze()
	logger.Debug("реестр конвертеров заполнен", slog.Int("converters", r.Len()))
	return r
}

// ProvideExplainContext создаёт контекст объяснений, привязанный к реестру r.
func ProvideExplainContext(cfg *config.Config, r *ufe.Registry) (*ufe.Context, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	return cfg.ExplainContext(ufe.WithRegistry(r))
}

// ProvideMetricsCollector создаёт Collector на основе секции metrics.
// При ошибке создания возвращает NopCollector и логирует ошибку.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil {
		return metrics.NewNopCollector()
	}

	metricsCfg := metrics.Config{
		Enabled:        cfg.Metrics.Enabled,
		PushgatewayURL: cfg.Metrics.PushgatewayURL,
		JobName:        cfg.Metrics.JobName,
		Timeout:        cfg.Metrics.Timeout,
		InstanceLabel:  cfg.Metrics.InstanceLabel,
	}

	collector, err := metrics.NewCollector(metricsCfg, logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider создаёт и регистрирует глобальный OTel TracerProvider.
// Если трейсинг отключён или не инициализировался — nop shutdown.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) tracing.ShutdownFunc {
	if cfg == nil {
		return tracing.NewNopTracerProvider()
	}

	tracingCfg := tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Endpoint:     cfg.Tracing.Endpoint,
		ServiceName:  cfg.Tracing.ServiceName,
		Version:      constants.Version,
		Environment:  cfg.Tracing.Environment,
		Insecure:     cfg.Tracing.Insecure,
		Timeout:      cfg.Tracing.Timeout,
		SamplingRate: cfg.Tracing.SamplingRate,
	}

	shutdown, err := tracing.NewTracerProvider(tracingCfg, logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return tracing.NewNopTracerProvider()
	}
	return shutdown
}
