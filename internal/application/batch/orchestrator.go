package batch

import (
	"bytes"
	"context"
	stderrors "errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/protograph/internal/domain/graph"
	"github.com/turtacn/protograph/internal/domain/structure"
	"github.com/turtacn/protograph/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/protograph/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/protograph/pkg/errors"
)

// FileOutcome is the per-file result of a conversion: where the artifact
// was written and the size of the graph it holds.
type FileOutcome struct {
	InputPath    string
	ArtifactPath string
	Nodes        int
	Edges        int
}

// FailureDiagnostic describes one file that failed to convert.
type FailureDiagnostic struct {
	Path   string
	Code   errors.ErrorCode
	Detail string
}

// Report summarizes a batch run.
type Report struct {
	RunID     string
	Attempted int
	Succeeded int
	Failed    int
	Failures  []FailureDiagnostic
	Elapsed   time.Duration
	Outcomes  []FileOutcome
}

// OrchestratorConfig carries the run parameters for an Orchestrator.
type OrchestratorConfig struct {
	Cutoff       float64
	OutputSuffix string
	Workers      int
	FileTimeout  time.Duration
}

// Orchestrator converts a set of structure files into graph artifacts,
// fanning the per-file work out over a bounded worker pool.  A file that
// fails is reported and skipped; it never aborts the run.
type Orchestrator struct {
	cfg     OrchestratorConfig
	logger  logging.Logger
	metrics *prometheus.PipelineMetrics
}

// NewOrchestrator creates an Orchestrator.  logger may be nil; metrics may
// be nil to disable instrumentation.
func NewOrchestrator(cfg OrchestratorConfig, logger logging.Logger, metrics *prometheus.PipelineMetrics) *Orchestrator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = "_graph.json"
	}
	return &Orchestrator{cfg: cfg, logger: logger.Named("batch"), metrics: metrics}
}

// Run converts every path and returns the aggregated report.  The cutoff
// is validated up front: a non-positive or non-finite cutoff is a
// configuration fault and fails the whole run before any file is touched.
func (o *Orchestrator) Run(ctx context.Context, paths []string) (*Report, error) {
	if err := validateCutoff(o.cfg.Cutoff); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := o.logger.With(logging.String("run_id", runID))
	log.Info("starting batch run",
		logging.Int("files", len(paths)),
		logging.Float64("cutoff", o.cfg.Cutoff),
		logging.Int("workers", o.cfg.Workers),
	)

	start := time.Now()
	proc := NewProcessor[string, FileOutcome](
		WithMaxConcurrency(o.cfg.Workers),
		WithItemTimeout(o.cfg.FileTimeout),
		WithLogger(log),
	)

	res, err := proc.Process(ctx, paths, func(ctx context.Context, path string) (FileOutcome, error) {
		return o.processFile(ctx, log, path)
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     runID,
		Attempted: res.TotalCount,
		Succeeded: res.SuccessCount,
		Failed:    res.FailureCount,
		Elapsed:   time.Since(start),
	}
	for _, ir := range res.Results {
		if ir.Status == ItemStatusSuccess {
			report.Outcomes = append(report.Outcomes, ir.Result)
			continue
		}
		d := diagnose(paths[ir.Index], ir)
		report.Failures = append(report.Failures, d)
		log.Warn("file conversion failed",
			logging.String("path", d.Path),
			logging.String("code", string(d.Code)),
			logging.String("detail", d.Detail),
		)
	}

	log.Info("batch run finished",
		logging.Int("attempted", report.Attempted),
		logging.Int("succeeded", report.Succeeded),
		logging.Int("failed", report.Failed),
		logging.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

// processFile runs the full conversion pipeline for one structure file.
func (o *Orchestrator) processFile(ctx context.Context, log logging.Logger, path string) (FileOutcome, error) {
	start := time.Now()
	o.metrics.WorkerStarted()
	defer o.metrics.WorkerFinished()

	outcome, err := o.convert(ctx, log, path)
	if err != nil {
		o.metrics.ObserveFile("failed", time.Since(start))
		return FileOutcome{}, err
	}
	o.metrics.ObserveFile("success", time.Since(start))
	return outcome, nil
}

func (o *Orchestrator) convert(ctx context.Context, log logging.Logger, path string) (FileOutcome, error) {
	atoms, err := structure.ParsePDBFile(path)
	if err != nil {
		return FileOutcome{}, err
	}
	if err := ctx.Err(); err != nil {
		return FileOutcome{}, err
	}

	buildStart := time.Now()
	g := graph.Build(atoms, o.cfg.Cutoff)
	o.metrics.ObserveGraph(len(g.Nodes), len(g.Edges), time.Since(buildStart))

	log.Debug("graph built",
		logging.String("path", path),
		logging.Int("atoms", len(atoms)),
		logging.Int("nodes", len(g.Nodes)),
		logging.Int("edges", len(g.Edges)),
	)

	out := ArtifactPath(path, o.cfg.OutputSuffix)
	var buf bytes.Buffer
	if err := g.EncodeJSON(&buf); err != nil {
		return FileOutcome{}, err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return FileOutcome{}, errors.Wrap(err, errors.ErrCodeArtifactWriteFailed, "cannot write graph artifact").
			WithDetail(out)
	}

	log.Debug("artifact written", logging.String("path", out))
	return FileOutcome{
		InputPath:    path,
		ArtifactPath: out,
		Nodes:        len(g.Nodes),
		Edges:        len(g.Edges),
	}, nil
}

// ArtifactPath derives the output artifact path for an input structure
// file: the input extension is dropped and suffix appended, so
// "data/1abc.pdb" becomes "data/1abc_graph.json".  The artifact always
// lands next to its input.
func ArtifactPath(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

// validateCutoff rejects cutoffs the pipeline cannot run with.
func validateCutoff(cutoff float64) error {
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) || cutoff <= 0 {
		return errors.New(errors.ErrCodeCutoffInvalid, "cutoff must be a positive finite number")
	}
	return nil
}

// diagnose turns a failed item result into a user-facing diagnostic.
func diagnose[R any](path string, ir *ItemResult[R]) FailureDiagnostic {
	d := FailureDiagnostic{Path: path}

	switch ir.Status {
	case ItemStatusTimeout:
		d.Code = errors.ErrCodeTimeout
		d.Detail = "processing timed out"
		return d
	case ItemStatusCancelled:
		d.Code = errors.ErrCodeTimeout
		d.Detail = "processing cancelled"
		return d
	}

	var ae *errors.AppError
	if stderrors.As(ir.Error, &ae) {
		d.Code = ae.Code
		d.Detail = ae.Message
		if ae.Detail != "" {
			d.Detail += ": " + ae.Detail
		}
		return d
	}
	d.Code = errors.ErrCodeInternal
	if ir.Error != nil {
		d.Detail = ir.Error.Error()
	}
	return d
}
