package sequencer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/piotrcurious/same-picture-finder/internal/capture"
	"github.com/piotrcurious/same-picture-finder/internal/fileutil"
	"github.com/piotrcurious/same-picture-finder/internal/logging"
	"github.com/piotrcurious/same-picture-finder/internal/overlap"
)

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeNotEnoughImages Outcome = "not_enough_images"
	OutcomeNoData          Outcome = "no_data"
	OutcomeBelowThreshold  Outcome = "below_threshold"
	OutcomeRenamed         Outcome = "renamed"
	OutcomePlanned         Outcome = "planned"
)

// Aggregator produces the directory-wide overlap statistics.
type Aggregator interface {
	Aggregate(ctx context.Context, images []string) (overlap.Summary, bool)
}

// Rename records one planned or performed rename.
type Rename struct {
	From string
	To   string
	Err  error
}

// Result reports what a run did.
type Result struct {
	Outcome    Outcome
	Candidates []Candidate
	Summary    overlap.Summary
	HasSummary bool
	Renames    []Rename
}

// Renamed counts the renames that completed without error.
func (r Result) Renamed() int {
	n := 0
	for _, rn := range r.Renames {
		if rn.Err == nil {
			n++
		}
	}
	return n
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithLogger sets the sequencer logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOrdering overrides the timestamp used to order candidates.
func WithOrdering(order capture.Func) Option {
	return func(s *Sequencer) {
		if order != nil {
			s.order = order
		}
	}
}

// Sequencer runs the decision and rename stage for a directory.
type Sequencer struct {
	agg    Aggregator
	policy Policy
	order  capture.Func
	logger *slog.Logger
}

// New constructs a Sequencer.
func New(agg Aggregator, policy Policy, opts ...Option) *Sequencer {
	policy.Extensions = append([]string(nil), policy.Extensions...)
	s := &Sequencer{
		agg:    agg,
		policy: policy,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "sequencer")
	if s.order == nil {
		s.order = capture.ForOrdering(policy.Ordering, s.logger)
	}
	return s
}

// Candidates lists the images Run would consider, in processing order.
func (s *Sequencer) Candidates(dir string) ([]Candidate, error) {
	return ListCandidates(dir, s.policy, s.order)
}

// Run evaluates dir and renames its candidates when the mean overlap reaches
// the threshold. Only a directory listing failure is returned as an error;
// per-file rename failures are logged and recorded in the result.
func (s *Sequencer) Run(ctx context.Context, dir string) (Result, error) {
	logger := logging.WithContext(ctx, s.logger)

	candidates, err := s.Candidates(dir)
	if err != nil {
		return Result{}, err
	}
	result := Result{Candidates: candidates}

	minimum := max(2, s.policy.MinCandidates)
	if len(candidates) < minimum {
		logger.Info("not enough images to process",
			logging.Int("candidates", len(candidates)),
			logging.Int("required", minimum),
		)
		result.Outcome = OutcomeNotEnoughImages
		return result, nil
	}

	summary, ok := s.agg.Aggregate(ctx, Paths(candidates))
	if !ok {
		logger.Warn("unable to compute valid overlap ratios", logging.Alert("no_data"))
		result.Outcome = OutcomeNoData
		return result, nil
	}
	result.Summary = summary
	result.HasSummary = true

	// The mean is directory-wide, so the comparison admits every candidate or none.
	if summary.Mean < s.policy.Threshold {
		logger.Info("overlap below threshold; leaving files unchanged",
			logging.Float64("mean", summary.Mean),
			logging.Float64("threshold", s.policy.Threshold),
		)
		result.Outcome = OutcomeBelowThreshold
		return result, nil
	}

	result.Renames = s.renameAll(logger, dir, candidates)
	result.Outcome = OutcomeRenamed
	if s.policy.DryRun {
		result.Outcome = OutcomePlanned
	}
	return result, nil
}

// TargetName returns the sequenced name for the counter-th file.
func TargetName(prefix string, counter int, original string) string {
	return fmt.Sprintf("%s%03d_%s", prefix, counter, original)
}

func (s *Sequencer) renameAll(logger *slog.Logger, dir string, candidates []Candidate) []Rename {
	renames := make([]Rename, 0, len(candidates))
	for i, c := range candidates {
		newName := TargetName(s.policy.Prefix, i+1, c.Name)
		newPath := filepath.Join(dir, newName)
		if newPath == c.Path {
			continue
		}
		if s.policy.DryRun {
			logger.Info("would rename", logging.String("from", c.Name), logging.String("to", newName))
			renames = append(renames, Rename{From: c.Name, To: newName})
			continue
		}
		err := moveKeepingModTime(c.Path, newPath)
		if err != nil {
			logger.Error("rename failed",
				logging.String("from", c.Name),
				logging.String("to", newName),
				logging.Error(err),
			)
		} else {
			logger.Info("renamed", logging.String("from", c.Name), logging.String("to", newName))
		}
		renames = append(renames, Rename{From: c.Name, To: newName, Err: err})
	}
	return renames
}

func moveKeepingModTime(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	mtime := info.ModTime()
	if err := fileutil.MoveFile(src, dst); err != nil {
		return err
	}
	return fileutil.PreserveModTime(dst, mtime)
}
