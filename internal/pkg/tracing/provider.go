package tracing

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/ufe/internal/pkg/logging"
)

// ShutdownFunc завершает TracerProvider и отправляет буферизированные span-ы.
type ShutdownFunc func(context.Context) error

// NewNopTracerProvider возвращает shutdown, который ничего не делает.
func NewNopTracerProvider() ShutdownFunc {
	return func(_ context.Context) error { return nil }
}

// NewTracerProvider создаёт OTLP HTTP TracerProvider с BatchSpanProcessor
// и регистрирует его глобально через otel.SetTracerProvider.
// Если трейсинг выключен, возвращает nop shutdown.
func NewTracerProvider(cfg Config, logger logging.Logger) (ShutdownFunc, error) {
	if !cfg.Enabled {
		logger.Debug("трейсинг выключен, используется nop provider")
		return NewNopTracerProvider(), nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// NewSchemaless: иначе Schema URL resource.Default() конфликтует с semconv v1.26.0.
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	// otlptracehttp.WithEndpoint принимает только host:port.
	endpointHost := cfg.Endpoint
	if u, parseErr := url.Parse(cfg.Endpoint); parseErr == nil && u.Host != "" {
		endpointHost = u.Host
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpointHost),
		otlptracehttp.WithTimeout(cfg.Timeout),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(cfg.SamplingRate)),
	)
	otel.SetTracerProvider(tp)

	logger.Info("OpenTelemetry трейсинг инициализирован",
		"endpoint", cfg.Endpoint,
		"service_name", cfg.ServiceName,
		"environment", cfg.Environment,
		"sampling_rate", cfg.SamplingRate,
	)

	return tp.Shutdown, nil
}

// ContextWithOTelTraceID добавляет в ctx remote span context с trace ID traceIDHex,
// чтобы span-ы запуска разделяли trace_id с логами.
// Невалидный traceIDHex оставляет ctx без изменений.
func ContextWithOTelTraceID(ctx context.Context, traceIDHex string) context.Context {
	traceID, err := trace.TraceIDFromHex(traceIDHex)
	if err != nil {
		return ctx
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}

// newSampler сэмплирует по rate и root span-ы, и span-ы с remote parent:
// ContextWithOTelTraceID всегда ставит FlagsSampled, и стандартный
// ParentBased иначе игнорировал бы rate.
func newSampler(rate float64) sdktrace.Sampler {
	return sdktrace.ParentBased(
		sdktrace.TraceIDRatioBased(rate),
		sdktrace.WithRemoteParentSampled(sdktrace.TraceIDRatioBased(rate)),
	)
}
