package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/Kargones/ufe/internal/pkg/logging"
	"github.com/Kargones/ufe/internal/pkg/ufe"
	"github.com/Kargones/ufe/internal/pkg/urlutil"
)

const namespace = "ufe"

// PrometheusCollector реализует Collector с Prometheus метриками.
// Отправляет метрики в Pushgateway при вызове Push().
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry

	commandDuration *prometheus.HistogramVec
	commandSuccess  *prometheus.CounterVec
	commandError    *prometheus.CounterVec
	explainNodes    *prometheus.HistogramVec
	explainDepth    *prometheus.HistogramVec

	instance string
}

// NewPrometheusCollector создаёт PrometheusCollector с указанной конфигурацией.
// Регистрирует метрики:
//   - ufe_command_duration_seconds (histogram)
//   - ufe_command_success_total, ufe_command_error_total (counter)
//   - ufe_explanation_nodes, ufe_explanation_depth (histogram)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для metrics instance label, используется 'unknown'",
				"error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	registry := prometheus.NewRegistry()

	commandDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of command execution in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60},
		},
		[]string{"command", "status"},
	)
	commandSuccess := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_success_total",
			Help:      "Total number of successful command executions",
		},
		[]string{"command"},
	)
	commandError := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_error_total",
			Help:      "Total number of failed command executions",
		},
		[]string{"command"},
	)
	explainNodes := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "explanation_nodes",
			Help:      "Number of nodes in a built explanation tree",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		},
		[]string{"command"},
	)
	explainDepth := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "explanation_depth",
			Help:      "Depth of a built explanation tree",
			Buckets:   prometheus.LinearBuckets(1, 1, 8),
		},
		[]string{"command"},
	)

	collectors := []prometheus.Collector{commandDuration, commandSuccess, commandError, explainNodes, explainDepth}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:          config,
		logger:          logger,
		registry:        registry,
		commandDuration: commandDuration,
		commandSuccess:  commandSuccess,
		commandError:    commandError,
		explainNodes:    explainNodes,
		explainDepth:    explainDepth,
		instance:        instance,
	}, nil
}

// RecordCommandStart только логирует: для CLI in-flight не отслеживается.
func (c *PrometheusCollector) RecordCommandStart(command string) {
	c.logger.Debug("metrics: command started", "command", command)
}

// maxLabelLength — максимальная длина значения label для защиты от cardinality explosion.
const maxLabelLength = 128

// sanitizeLabel обрезает значение label до maxLabelLength рун и заменяет
// контрольные символы, ломающие Prometheus text format.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// RecordCommandEnd обновляет histogram duration и counter success/error.
func (c *PrometheusCollector) RecordCommandEnd(command string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	command = sanitizeLabel(command)

	c.commandDuration.WithLabelValues(command, status).Observe(duration.Seconds())
	if success {
		c.commandSuccess.WithLabelValues(command).Inc()
	} else {
		c.commandError.WithLabelValues(command).Inc()
	}

	c.logger.Debug("metrics: command ended",
		"command", command,
		"duration_ms", duration.Milliseconds(),
		"success", success,
	)
}

// RecordExplanation записывает число узлов и глубину дерева объяснения.
func (c *PrometheusCollector) RecordExplanation(command string, tree ufe.UserFacingError) {
	command = sanitizeLabel(command)
	c.explainNodes.WithLabelValues(command).Observe(float64(tree.Count()))
	c.explainDepth.WithLabelValues(command).Observe(float64(tree.Depth()))
}

// Push отправляет метрики в Pushgateway. Ошибки только логируются.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if c.config.PushgatewayURL == "" {
		c.logger.Debug("metrics: pushgateway URL not configured, skipping push")
		return nil
	}

	select {
	case <-ctx.Done():
		c.logger.Debug("metrics push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// GetRegistry возвращает внутренний registry. Используется в тестах.
func (c *PrometheusCollector) GetRegistry() *prometheus.Registry {
	return c.registry
}
