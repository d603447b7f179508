package prometheus

import "time"

// PipelineMetrics holds the metrics instrumented by the batch pipeline.
type PipelineMetrics struct {
	// FilesTotal counts processed files, labelled by final status
	// (success, failed, timeout, cancelled).
	FilesTotal CounterVec

	// FileDuration observes the wall time of one complete file pipeline
	// (parse → index → build → serialize → write), in seconds.
	FileDuration HistogramVec

	// GraphBuildDuration observes the graph-construction step alone.
	GraphBuildDuration HistogramVec

	// GraphNodesTotal and GraphEdgesTotal accumulate node/edge counts across
	// all successfully built graphs of the run.
	GraphNodesTotal CounterVec
	GraphEdgesTotal CounterVec

	// ActiveWorkers tracks the number of file pipelines currently running.
	ActiveWorkers GaugeVec
}

// Buckets tuned for per-file pipeline durations: parsing small PDB files is
// milliseconds, large assemblies can take minutes.
var defaultPipelineBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120}

// NewPipelineMetrics registers the pipeline metric set on collector.
func NewPipelineMetrics(collector MetricsCollector) *PipelineMetrics {
	return &PipelineMetrics{
		FilesTotal:         collector.RegisterCounter("files_total", "Structure files processed", "status"),
		FileDuration:       collector.RegisterHistogram("file_duration_seconds", "Per-file pipeline duration", defaultPipelineBuckets),
		GraphBuildDuration: collector.RegisterHistogram("graph_build_duration_seconds", "Graph construction duration", defaultPipelineBuckets),
		GraphNodesTotal:    collector.RegisterCounter("graph_nodes_total", "Graph nodes built"),
		GraphEdgesTotal:    collector.RegisterCounter("graph_edges_total", "Graph edges built"),
		ActiveWorkers:      collector.RegisterGauge("active_workers", "File pipelines currently running"),
	}
}

// ObserveFile records the outcome of one file pipeline.
func (m *PipelineMetrics) ObserveFile(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.FilesTotal.WithLabelValues(status).Inc()
	m.FileDuration.WithLabelValues().Observe(elapsed.Seconds())
}

// WorkerStarted and WorkerFinished track the active-pipeline gauge.
func (m *PipelineMetrics) WorkerStarted() {
	if m == nil {
		return
	}
	m.ActiveWorkers.WithLabelValues().Inc()
}

func (m *PipelineMetrics) WorkerFinished() {
	if m == nil {
		return
	}
	m.ActiveWorkers.WithLabelValues().Dec()
}

// ObserveGraph records the shape of one successfully built graph.
func (m *PipelineMetrics) ObserveGraph(nodes, edges int, buildTime time.Duration) {
	if m == nil {
		return
	}
	m.GraphNodesTotal.WithLabelValues().Add(float64(nodes))
	m.GraphEdgesTotal.WithLabelValues().Add(float64(edges))
	m.GraphBuildDuration.WithLabelValues().Observe(buildTime.Seconds())
}
