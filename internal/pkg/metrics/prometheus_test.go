package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/ufe/internal/pkg/logging"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

func testConfig(url string) Config {
	return Config{
		Enabled:        true,
		PushgatewayURL: url,
		JobName:        "ufe",
		Timeout:        10 * time.Second,
		InstanceLabel:  "test-host",
	}
}

func newTestCollector(t *testing.T) *PrometheusCollector {
	t.Helper()
	collector, err := NewPrometheusCollector(testConfig("http://localhost:9091"), logging.NewNopLogger())
	require.NoError(t, err)
	return collector
}

func gather(t *testing.T, c *PrometheusCollector) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := c.GetRegistry().Gather()
	require.NoError(t, err)
	result := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		result[f.GetName()] = f
	}
	return result
}

func labels(m *dto.Metric) map[string]string {
	result := make(map[string]string)
	for _, l := range m.GetLabel() {
		result[l.GetName()] = l.GetValue()
	}
	return result
}

func TestPrometheusCollector_RecordCommand(t *testing.T) {
	collector := newTestCollector(t)

	collector.RecordCommandStart("explain")
	collector.RecordCommandEnd("explain", 1500*time.Millisecond, true)
	collector.RecordCommandEnd("explain", 200*time.Millisecond, false)

	families := gather(t, collector)
	require.Contains(t, families, "ufe_command_duration_seconds")
	require.Contains(t, families, "ufe_command_success_total")
	require.Contains(t, families, "ufe_command_error_total")

	success := families["ufe_command_success_total"].GetMetric()
	require.Len(t, success, 1)
	assert.Equal(t, map[string]string{"command": "explain"}, labels(success[0]))
	assert.InDelta(t, 1.0, success[0].GetCounter().GetValue(), 1e-9)

	durations := families["ufe_command_duration_seconds"].GetMetric()
	require.Len(t, durations, 2)
	statuses := []string{labels(durations[0])["status"], labels(durations[1])["status"]}
	assert.ElementsMatch(t, []string{"success", "error"}, statuses)
}

func TestPrometheusCollector_RecordExplanation(t *testing.T) {
	collector := newTestCollector(t)

	leaf := ufe.Leaf(ufe.NewCause().WithSummary("leaf"))
	tree := ufe.Leaf(ufe.NewCause().WithSummary("root")).WithRelated(leaf, leaf.WithRelated(leaf))
	collector.RecordExplanation("explain", tree)

	families := gather(t, collector)

	nodes := families["ufe_explanation_nodes"].GetMetric()
	require.Len(t, nodes, 1)
	assert.Equal(t, uint64(1), nodes[0].GetHistogram().GetSampleCount())
	assert.InDelta(t, 4.0, nodes[0].GetHistogram().GetSampleSum(), 1e-9)

	depth := families["ufe_explanation_depth"].GetMetric()
	require.Len(t, depth, 1)
	assert.InDelta(t, 3.0, depth[0].GetHistogram().GetSampleSum(), 1e-9)
}

func TestPrometheusCollector_Push(t *testing.T) {
	var receivedMethod, receivedPath, receivedBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedPath = r.URL.Path
		buf := new(strings.Builder)
		_, _ = io.Copy(buf, r.Body)
		receivedBody = buf.String()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(testConfig(server.URL), logging.NewNopLogger())
	require.NoError(t, err)
	collector.RecordCommandEnd("explain", time.Second, true)

	require.NoError(t, collector.Push(context.Background()))

	assert.Equal(t, http.MethodPut, receivedMethod)
	assert.Contains(t, receivedPath, "/metrics/job/ufe")
	assert.Contains(t, receivedPath, "/instance/test-host")
	assert.NotEmpty(t, receivedBody)
}

func TestPrometheusCollector_PushError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(testConfig(server.URL), logging.NewNopLogger())
	require.NoError(t, err)
	collector.RecordCommandEnd("explain", time.Second, false)

	assert.NoError(t, collector.Push(context.Background()), "ошибка отправки не должна прерывать команду")
}

func TestPrometheusCollector_ContextCancellation(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(testConfig(server.URL), logging.NewNopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, collector.Push(ctx))
	assert.False(t, called, "отменённый контекст не должен приводить к запросу")
}

func TestPrometheusCollector_InstanceFromHostname(t *testing.T) {
	cfg := testConfig("http://localhost:9091")
	cfg.InstanceLabel = ""

	collector, err := NewPrometheusCollector(cfg, logging.NewNopLogger())
	require.NoError(t, err)
	assert.NotEmpty(t, collector.instance)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"отключены", Config{}, nil},
		{"валидная", testConfig("http://pg:9091"), nil},
		{"без url", Config{Enabled: true, JobName: "ufe", Timeout: time.Second}, ErrPushgatewayURLRequired},
		{"невалидный url", Config{Enabled: true, PushgatewayURL: "pg:9091/", JobName: "ufe", Timeout: time.Second}, ErrPushgatewayURLInvalid},
		{"не http схема", Config{Enabled: true, PushgatewayURL: "ftp://pg:9091", JobName: "ufe", Timeout: time.Second}, ErrPushgatewayURLInvalid},
		{"без job", Config{Enabled: true, PushgatewayURL: "http://pg:9091", Timeout: time.Second}, ErrJobNameRequired},
		{"без таймаута", Config{Enabled: true, PushgatewayURL: "http://pg:9091", JobName: "ufe"}, ErrInvalidTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCollector_Factory(t *testing.T) {
	collector, err := NewCollector(Config{}, logging.NewNopLogger())
	require.NoError(t, err)
	assert.IsType(t, &NopCollector{}, collector)

	collector, err = NewCollector(testConfig("http://pg:9091"), logging.NewNopLogger())
	require.NoError(t, err)
	assert.IsType(t, &PrometheusCollector{}, collector)

	_, err = NewCollector(Config{Enabled: true}, logging.NewNopLogger())
	assert.ErrorIs(t, err, ErrPushgatewayURLRequired)
}

func TestNopCollector(t *testing.T) {
	var c Collector = NewNopCollector()
	assert.NotPanics(t, func() {
		c.RecordCommandStart("explain")
		c.RecordCommandEnd("explain", time.Second, true)
		c.RecordExplanation("explain", ufe.UserFacingError{})
	})
	assert.NoError(t, c.Push(context.Background()))
}

func TestSanitizeLabel(t *testing.T) {
	assert.Equal(t, "explain", sanitizeLabel("explain"))
	assert.Equal(t, "a_b_c", sanitizeLabel("a\nb\rc"))

	long := strings.Repeat("я", maxLabelLength+10)
	assert.Equal(t, maxLabelLength, len([]rune(sanitizeLabel(long))))
}
