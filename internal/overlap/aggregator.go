package overlap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/piotrcurious/same-picture-finder/internal/logging"
)

// ParameterSet is one ordered list of alignment flags.
type ParameterSet []string

// Runner performs one alignment run and returns its overlap indicators.
// Implementations report failures by returning an empty slice.
type Runner interface {
	Align(ctx context.Context, images, params []string, artifactPath string) []float64
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTempDir places artifacts in dir instead of the system temp area.
func WithTempDir(dir string) Option {
	return func(a *Aggregator) {
		a.tempDir = dir
	}
}

// WithLogger sets the aggregator logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Aggregator fans one directory scan out across every parameter set.
type Aggregator struct {
	runner  Runner
	sets    []ParameterSet
	tempDir string
	logger  *slog.Logger
}

// New constructs an Aggregator. The parameter sets are copied.
func New(runner Runner, sets []ParameterSet, opts ...Option) *Aggregator {
	copied := make([]ParameterSet, len(sets))
	for i, set := range sets {
		copied[i] = append(ParameterSet(nil), set...)
	}
	a := &Aggregator{
		runner: runner,
		sets:   copied,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logging.NewComponentLogger(a.logger, "overlap")
	return a
}

// ParameterSets returns a copy of the configured sets.
func (a *Aggregator) ParameterSets() []ParameterSet {
	out := make([]ParameterSet, len(a.sets))
	for i, set := range a.sets {
		out[i] = append(ParameterSet(nil), set...)
	}
	return out
}

type job struct {
	params   ParameterSet
	artifact string
}

// Aggregate runs every parameter set against the full image list and
// summarises the indicators. ok is false when no run produced any.
func (a *Aggregator) Aggregate(ctx context.Context, images []string) (Summary, bool) {
	logger := logging.WithContext(ctx, a.logger)

	jobs := make([]job, 0, len(a.sets))
	for _, params := range a.sets {
		artifact, err := a.allocateArtifact()
		if err != nil {
			logger.Error("allocate alignment artifact failed",
				logging.Strings("params", params),
				logging.Error(err),
			)
			continue
		}
		jobs = append(jobs, job{params: params, artifact: artifact})
	}

	var (
		mu     sync.Mutex
		scores []float64
	)
	var group errgroup.Group
	group.SetLimit(max(1, len(jobs)))
	for _, j := range jobs {
		group.Go(func() error {
			defer a.removeArtifact(logger, j.artifact)
			defer func() {
				if r := recover(); r != nil {
					logger.Error("alignment run panicked",
						logging.Strings("params", j.params),
						logging.Any("panic", r),
					)
				}
			}()

			result := a.runner.Align(ctx, images, j.params, j.artifact)

			mu.Lock()
			scores = append(scores, result...)
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	summary, ok := Compute(scores)
	if !ok {
		logger.Warn("no overlap scores found", logging.Int("runs", len(jobs)))
		return Summary{}, false
	}
	logger.Info("overlap statistics",
		logging.Float64("mean", summary.Mean),
		logging.Float64("median", summary.Median),
		logging.Float64("std_dev", summary.StdDev),
		logging.Int("samples", summary.Count),
	)
	return summary, true
}

func (a *Aggregator) allocateArtifact() (string, error) {
	f, err := os.CreateTemp(a.tempDir, "samerename-*.pto")
	if err != nil {
		return "", fmt.Errorf("create temp artifact: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("close temp artifact: %w", err)
	}
	return name, nil
}

func (a *Aggregator) removeArtifact(logger *slog.Logger, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("delete temporary artifact failed",
			logging.String("path", path),
			logging.Error(err),
		)
	}
}
