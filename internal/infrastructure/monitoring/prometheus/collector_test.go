package prometheus

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/protograph/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "protograph"}, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func TestNewMetricsCollector_RequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestRegisterCounter_IncAndExpose(t *testing.T) {
	c := newTestCollector(t)

	files := c.RegisterCounter("files_total", "files processed", "status")
	files.WithLabelValues("success").Inc()
	files.WithLabelValues("failed").Add(2)

	body := scrape(t, c)
	assert.Contains(t, body, `protograph_files_total{status="success"} 1`)
	assert.Contains(t, body, `protograph_files_total{status="failed"} 2`)
}

func TestRegisterCounter_DuplicateReturnsSameCollector(t *testing.T) {
	c := newTestCollector(t)

	a := c.RegisterCounter("dup_total", "dup", "l")
	b := c.RegisterCounter("dup_total", "dup", "l")

	a.WithLabelValues("x").Inc()
	b.WithLabelValues("x").Inc()

	assert.Contains(t, scrape(t, c), `protograph_dup_total{l="x"} 2`)
}

func TestRegisterHistogram_ObservesWithDefaultBuckets(t *testing.T) {
	c := newTestCollector(t)

	h := c.RegisterHistogram("file_duration_seconds", "duration", nil)
	h.WithLabelValues().Observe(0.2)

	body := scrape(t, c)
	assert.Contains(t, body, "protograph_file_duration_seconds_count 1")
}

func TestRegisterGauge_SetIncDec(t *testing.T) {
	c := newTestCollector(t)

	g := c.RegisterGauge("active_workers", "workers")
	gauge := g.WithLabelValues()
	gauge.Set(3)
	gauge.Inc()
	gauge.Dec()

	assert.Contains(t, scrape(t, c), "protograph_active_workers 3")
}

func TestPipelineMetrics_ObserveHelpers(t *testing.T) {
	c := newTestCollector(t)
	m := NewPipelineMetrics(c)

	m.ObserveFile("success", 120*time.Millisecond)
	m.ObserveFile("failed", 5*time.Millisecond)
	m.ObserveGraph(10, 14, time.Millisecond)

	body := scrape(t, c)
	assert.Contains(t, body, `protograph_files_total{status="success"} 1`)
	assert.Contains(t, body, `protograph_files_total{status="failed"} 1`)
	assert.Contains(t, body, "protograph_graph_nodes_total 10")
	assert.Contains(t, body, "protograph_graph_edges_total 14")
}

func TestPipelineMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *PipelineMetrics
	m.ObserveFile("success", time.Second)
	m.ObserveGraph(1, 1, time.Second)
}

func TestNoopCollector_NeverPanics(t *testing.T) {
	c := NewNoopCollector()
	c.RegisterCounter("a", "a").WithLabelValues("x").Inc()
	c.RegisterGauge("b", "b").WithLabelValues().Set(1)
	c.RegisterHistogram("c", "c", nil).WithLabelValues().Observe(1)
	assert.NotNil(t, c.Handler())
}

// scrape fetches the collector's metrics endpoint and returns the body.
func scrape(t *testing.T, c MetricsCollector) string {
	t.Helper()
	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
