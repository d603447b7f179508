package config

import (
	"runtime"
	"time"
)

// Default values applied to unset fields.
const (
	// DefaultCutoff is the edge-distance cutoff in ångströms.  3.5 Å covers
	// hydrogen bonds and close van der Waals contacts.
	DefaultCutoff = 3.5

	// DefaultOutputSuffix replaces the recognized structure-file extension
	// on the artifact path.
	DefaultOutputSuffix = "_graph.json"

	DefaultFileTimeout = 5 * time.Minute

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	DefaultMetricsAddr      = "127.0.0.1:9090"
	DefaultMetricsNamespace = "protograph"
)

// ApplyDefaults fills every unset field of cfg with its default value.
// It never overrides a value the user has set explicitly.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}
	if len(cfg.Log.ErrorOutputPaths) == 0 {
		cfg.Log.ErrorOutputPaths = []string{"stderr"}
	}

	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = runtime.NumCPU()
	}
	if cfg.Batch.FileTimeout == 0 {
		cfg.Batch.FileTimeout = DefaultFileTimeout
	}

	if cfg.Graph.Cutoff == 0 {
		cfg.Graph.Cutoff = DefaultCutoff
	}
	if cfg.Graph.OutputSuffix == "" {
		cfg.Graph.OutputSuffix = DefaultOutputSuffix
	}

	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = DefaultMetricsAddr
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// NewDefaultConfig returns a Config populated entirely with defaults.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
