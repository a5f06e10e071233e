// Package analyzer drives serve detection across one or more pose streams.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/henriquefukushima/serve-ai-analysis/internal/ball"
	"github.com/henriquefukushima/serve-ai-analysis/internal/detect"
	"github.com/henriquefukushima/serve-ai-analysis/internal/pose"
)

// Input bundles one stream with its optional ball detections.
type Input struct {
	Stream *pose.Stream
	Balls  *ball.Sequence
}

// Analyzer fans independent streams out to a bounded worker pool. Each
// stream's detection state is strictly local, so parallel processing is safe
// by construction.
type Analyzer struct {
	detector *detect.Detector
	log      *zap.Logger
	workers  int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the structured logger for the analyzer and its detector.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// WithWorkers bounds the number of streams processed concurrently.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// New creates an Analyzer. Detector options (scorer, logger) apply to every
// stream it processes.
func New(cfg detect.Config, detectorOpts []detect.Option, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		log:     zap.NewNop(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(a)
	}

	detectorOpts = append(detectorOpts, detect.WithLogger(a.log))
	d, err := detect.New(cfg, detectorOpts...)
	if err != nil {
		return nil, err
	}
	a.detector = d
	return a, nil
}

// DetectServes processes a single stream and returns its resolved event list.
func (a *Analyzer) DetectServes(ctx context.Context, in Input) ([]detect.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in.Stream == nil {
		return nil, errors.New("nil stream")
	}

	events, err := a.detector.Detect(in.Stream, in.Balls)
	if err != nil {
		return nil, fmt.Errorf("detect %q: %w", in.Stream.Source, err)
	}

	stats := detect.ComputeStats(events)
	a.log.Info("stream processed",
		zap.String("source", in.Stream.Source),
		zap.Int("frames", in.Stream.Len()),
		zap.Int("serves", stats.TotalServes),
		zap.Float64("avg_duration", stats.AvgDuration))
	return events, nil
}

// DetectAll processes every input through the worker pool and returns the
// per-source event lists. Streams finished before a cancellation or a
// failure still appear in the result; errors for the rest are joined.
func (a *Analyzer) DetectAll(ctx context.Context, inputs []Input) (map[string][]detect.Event, error) {
	results := make(map[string][]detect.Event)
	var errs []error
	var mu sync.Mutex

	jobs := make(chan Input)
	var wg sync.WaitGroup

	workers := a.workers
	if workers > len(inputs) {
		workers = len(inputs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for in := range jobs {
				events, err := a.DetectServes(ctx, in)
				mu.Lock()
				if err != nil {
					errs = append(errs, err)
				} else {
					results[in.Stream.Source] = events
				}
				mu.Unlock()
			}
		}()
	}

	for _, in := range inputs {
		jobs <- in
	}
	close(jobs)
	wg.Wait()

	return results, errors.Join(errs...)
}
