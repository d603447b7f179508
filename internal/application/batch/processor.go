// Package batch runs per-file structure-to-graph conversions concurrently
// and aggregates the outcomes into a run report.
package batch

import (
	"context"
	stderrors "errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/turtacn/protograph/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/protograph/pkg/errors"
)

// ItemStatus represents the outcome status of a single batch item.
type ItemStatus int

const (
	ItemStatusSuccess   ItemStatus = iota // processing completed successfully
	ItemStatusFailed                      // processing failed with an error
	ItemStatusTimeout                     // processing exceeded its timeout
	ItemStatusCancelled                   // processing was cancelled
)

// String returns the human-readable representation of an ItemStatus.
func (s ItemStatus) String() string {
	switch s {
	case ItemStatusSuccess:
		return "SUCCESS"
	case ItemStatusFailed:
		return "FAILED"
	case ItemStatusTimeout:
		return "TIMEOUT"
	case ItemStatusCancelled:
		return "CANCELLED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// ProcessFunc is the signature for a function that processes a single item.
type ProcessFunc[T, R any] func(ctx context.Context, item T) (R, error)

// ItemResult holds the outcome of processing a single item within a batch.
type ItemResult[R any] struct {
	Index    int
	Result   R
	Error    error
	Duration time.Duration
	Status   ItemStatus
}

// Result aggregates the outcomes of an entire batch run.  Results are
// ordered by original item index regardless of completion order.
type Result[R any] struct {
	Results       []*ItemResult[R]
	TotalCount    int
	SuccessCount  int
	FailureCount  int
	TotalDuration time.Duration
}

// processorConfig holds the tunables for a Processor.
type processorConfig struct {
	maxConcurrency int
	itemTimeout    time.Duration
	logger         logging.Logger
}

func defaultProcessorConfig() *processorConfig {
	return &processorConfig{
		maxConcurrency: runtime.NumCPU(),
		itemTimeout:    5 * time.Minute,
		logger:         logging.NewNopLogger(),
	}
}

// Option configures a Processor.
type Option func(*processorConfig)

// WithMaxConcurrency sets the maximum number of items processed concurrently.
func WithMaxConcurrency(n int) Option {
	return func(c *processorConfig) {
		if n > 0 {
			c.maxConcurrency = n
		}
	}
}

// WithItemTimeout sets the per-item processing timeout.
func WithItemTimeout(d time.Duration) Option {
	return func(c *processorConfig) {
		if d > 0 {
			c.itemTimeout = d
		}
	}
}

// WithLogger injects a logger.
func WithLogger(l logging.Logger) Option {
	return func(c *processorConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Processor is a generic bounded-concurrency batch engine.  One item's
// failure never affects the others; every item always yields a result.
type Processor[T, R any] struct {
	cfg *processorConfig
}

// NewProcessor creates a Processor with the supplied options.
func NewProcessor[T, R any](opts ...Option) *Processor[T, R] {
	cfg := defaultProcessorConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &Processor[T, R]{cfg: cfg}
}

// Process executes fn for every item, at most maxConcurrency at a time,
// and returns one ItemResult per item in input order.  Items that never
// start because ctx expired are reported as timed out or cancelled.
func (p *Processor[T, R]) Process(ctx context.Context, items []T, fn ProcessFunc[T, R]) (*Result[R], error) {
	if fn == nil {
		return nil, errors.InvalidParam("process function must not be nil")
	}
	n := len(items)
	if n == 0 {
		return &Result[R]{Results: []*ItemResult[R]{}}, nil
	}

	batchStart := time.Now()
	resultCh := make(chan *ItemResult[R], n)

	// Semaphore via a buffered channel.
	sem := make(chan struct{}, p.cfg.maxConcurrency)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int, item T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				resultCh <- &ItemResult[R]{
					Index:  idx,
					Error:  ctx.Err(),
					Status: classifyCtxError(ctx.Err()),
				}
				return
			}

			resultCh <- p.processOne(ctx, idx, item, fn)
		}(i, items[i])
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]*ItemResult[R], 0, n)
	for ir := range resultCh {
		results = append(results, ir)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	return buildResult(results, time.Since(batchStart)), nil
}

func (p *Processor[T, R]) processOne(ctx context.Context, idx int, item T, fn ProcessFunc[T, R]) *ItemResult[R] {
	itemStart := time.Now()

	itemCtx, cancel := context.WithTimeout(ctx, p.cfg.itemTimeout)
	result, err := fn(itemCtx, item)
	cancel()

	if err == nil {
		return &ItemResult[R]{
			Index:    idx,
			Result:   result,
			Status:   ItemStatusSuccess,
			Duration: time.Since(itemStart),
		}
	}

	p.cfg.logger.Debug("batch item failed",
		logging.Int("index", idx),
		logging.Err(err),
	)
	return &ItemResult[R]{
		Index:    idx,
		Error:    err,
		Status:   classifyError(ctx, err),
		Duration: time.Since(itemStart),
	}
}

func buildResult[R any](results []*ItemResult[R], total time.Duration) *Result[R] {
	r := &Result[R]{
		Results:       results,
		TotalCount:    len(results),
		TotalDuration: total,
	}
	for _, ir := range results {
		if ir.Status == ItemStatusSuccess {
			r.SuccessCount++
		} else {
			r.FailureCount++
		}
	}
	return r
}

func classifyCtxError(err error) ItemStatus {
	if err == nil {
		return ItemStatusSuccess
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return ItemStatusTimeout
	}
	return ItemStatusCancelled
}

func classifyError(ctx context.Context, err error) ItemStatus {
	switch {
	case err == nil:
		return ItemStatusSuccess
	case stderrors.Is(err, context.DeadlineExceeded):
		return ItemStatusTimeout
	case stderrors.Is(err, context.Canceled):
		return ItemStatusCancelled
	}
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return ItemStatusTimeout
	case context.Canceled:
		return ItemStatusCancelled
	}
	return ItemStatusFailed
}
