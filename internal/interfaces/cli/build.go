package cli

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/protograph/internal/application/batch"
	"github.com/turtacn/protograph/internal/config"
	"github.com/turtacn/protograph/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/protograph/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/protograph/pkg/errors"
)

// BuildOptions holds the build subcommand flags.
type BuildOptions struct {
	Glob    string
	Cutoff  float64
	Workers int
}

// NewBuildCmd creates the `build` subcommand: expand the glob, convert
// every matching structure file into a graph artifact, and print a run
// summary.
func NewBuildCmd() *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert structure files matching a glob into graph artifacts",
		Long:  "build expands the --glob pattern, parses every matching structure file,\nconstructs its proximity graph with the configured distance cutoff, and\nwrites one <name>_graph.json artifact next to each input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Glob, "glob", "g", "", "glob pattern selecting input structure files (required)")
	f.Float64Var(&opts.Cutoff, "cutoff", 0, "distance cutoff for edges (overrides config)")
	f.IntVar(&opts.Workers, "workers", 0, "concurrent file pipelines (overrides config)")
	_ = cmd.MarkFlagRequired("glob")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *BuildOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	cfg, logger := cliCtx.Config, cliCtx.Logger

	cutoff := cfg.Graph.Cutoff
	if cmd.Flags().Changed("cutoff") {
		cutoff = opts.Cutoff
	}
	workers := cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		workers = opts.Workers
	}

	paths, err := filepath.Glob(opts.Glob)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeGlobInvalid, "invalid glob pattern").
			WithDetail(opts.Glob)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		logger.Warn("glob matched no files", logging.String("glob", opts.Glob))
		fmt.Fprintf(cmd.OutOrStdout(), "no files matched %q\n", opts.Glob)
		return nil
	}

	metrics := startMetrics(cfg, logger)

	orch := batch.NewOrchestrator(batch.OrchestratorConfig{
		Cutoff:       cutoff,
		OutputSuffix: cfg.Graph.OutputSuffix,
		Workers:      workers,
		FileTimeout:  cfg.Batch.FileTimeout,
	}, logger, metrics)

	report, err := orch.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	printReport(cmd, report)

	if report.Failed > 0 {
		return errors.New(errors.ErrCodeBatchAborted,
			fmt.Sprintf("%d of %d files failed", report.Failed, report.Attempted))
	}
	return nil
}

// startMetrics brings up the optional Prometheus endpoint.  Metrics are
// best-effort: a failure to start them never blocks a conversion run.
func startMetrics(cfg *config.Config, logger logging.Logger) *prometheus.PipelineMetrics {
	if !cfg.Metrics.Enabled {
		return nil
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace: cfg.Metrics.Namespace,
	}, logger)
	if err != nil {
		logger.Warn("metrics collector initialization failed", logging.Err(err))
		return nil
	}

	go func() {
		logger.Info("serving metrics", logging.String("addr", cfg.Metrics.Addr))
		if err := http.ListenAndServe(cfg.Metrics.Addr, collector.Handler()); err != nil {
			logger.Warn("metrics endpoint stopped", logging.Err(err))
		}
	}()

	return prometheus.NewPipelineMetrics(collector)
}

func printReport(cmd *cobra.Command, report *batch.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d attempted, %d succeeded, %d failed in %s\n",
		report.RunID, report.Attempted, report.Succeeded, report.Failed,
		report.Elapsed.Round(time.Millisecond))

	for _, oc := range report.Outcomes {
		fmt.Fprintf(out, "  %s -> %s (%d nodes, %d edges)\n",
			oc.InputPath, oc.ArtifactPath, oc.Nodes, oc.Edges)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(out, "  FAILED %s [%s] %s\n", f.Path, f.Code, f.Detail)
	}
}
