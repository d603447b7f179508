// Package config defines the configuration structures for protograph.
// This file holds only plain data types and validation; loading lives in
// loader.go.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/turtacn/protograph/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/protograph/pkg/errors"
)

// BatchConfig holds the parallel file-processing tunables.
type BatchConfig struct {
	// Workers is the number of file pipelines run concurrently.
	// Zero means one worker per CPU.
	Workers int `mapstructure:"workers"`

	// FileTimeout bounds one file's pipeline (parse through write).
	FileTimeout time.Duration `mapstructure:"file_timeout"`
}

// GraphConfig holds graph-construction parameters.
type GraphConfig struct {
	// Cutoff is the maximum Euclidean distance, in the coordinate units of
	// the input files (ångströms for PDB), for an edge to be created.
	Cutoff float64 `mapstructure:"cutoff"`

	// OutputSuffix is appended to the extension-stripped input name to form
	// the artifact path.
	OutputSuffix string `mapstructure:"output_suffix"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Addr      string `mapstructure:"addr"`
	Namespace string `mapstructure:"namespace"`
}

// Config is the root configuration object.
type Config struct {
	Log     logging.LogConfig `mapstructure:"log"`
	Batch   BatchConfig       `mapstructure:"batch"`
	Graph   GraphConfig       `mapstructure:"graph"`
	Metrics MetricsConfig     `mapstructure:"metrics"`
}

// Validate checks cross-field constraints.  A validation failure is fatal at
// the batch level: no per-file work may proceed on an invalid configuration.
func (c *Config) Validate() error {
	if err := ValidateCutoff(c.Graph.Cutoff); err != nil {
		return err
	}
	if c.Batch.Workers < 0 {
		return errors.New(errors.ErrCodeValidation,
			fmt.Sprintf("batch.workers must be >= 0, got %d", c.Batch.Workers))
	}
	if c.Batch.FileTimeout < 0 {
		return errors.New(errors.ErrCodeValidation,
			fmt.Sprintf("batch.file_timeout must be >= 0, got %s", c.Batch.FileTimeout))
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return errors.New(errors.ErrCodeValidation, "metrics.addr is required when metrics.enabled is true")
	}
	return nil
}

// ValidateCutoff enforces the cutoff policy: a finite, strictly positive
// distance.  Exposed separately because the CLI validates flag overrides
// before the batch starts.
func ValidateCutoff(cutoff float64) error {
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return errors.New(errors.ErrCodeCutoffInvalid, "cutoff must be a finite number")
	}
	if cutoff <= 0 {
		return errors.New(errors.ErrCodeCutoffInvalid,
			fmt.Sprintf("cutoff must be positive, got %g", cutoff))
	}
	return nil
}
