package pto

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"regexp"

	"github.com/piotrcurious/same-picture-finder/internal/logging"
	"github.com/piotrcurious/same-picture-finder/internal/services"
)

var controlPointPattern = regexp.MustCompile(`c n\d+ N\d+ x\d+ y\d+ X\d+ Y\d+ t(\d+)`)

// Summary counts the control-point records found in one artifact.
type Summary struct {
	Records int
	// Types maps each t tag, as written, to the number of records carrying it.
	Types map[string]int
}

// DistinctTypes reports how many different t tags were seen.
func (s Summary) DistinctTypes() int {
	return len(s.Types)
}

// Density returns records per distinct tag. ok is false when no record matched.
func (s Summary) Density() (float64, bool) {
	if s.Records == 0 {
		return 0, false
	}
	return float64(s.Records) / float64(max(1, s.DistinctTypes())), true
}

// Parse scans the artifact text for control-point records.
func Parse(r io.Reader) (Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Summary{}, fmt.Errorf("read pto: %w", err)
	}
	summary := Summary{Types: make(map[string]int)}
	for _, match := range controlPointPattern.FindAllSubmatch(data, -1) {
		summary.Records++
		summary.Types[string(match[1])]++
	}
	return summary, nil
}

// ParseFile parses the artifact at path. A missing file is reported as
// services.ErrNotFound.
func ParseFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Summary{}, services.Wrap(services.ErrNotFound, "pto", "open", path, err)
		}
		return Summary{}, fmt.Errorf("open pto %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Indicators returns the overlap indicators for the artifact at path: a
// single density value, or nothing when the file has no control points or
// cannot be read. Failures are logged, never returned.
func Indicators(path string, logger *slog.Logger) []float64 {
	if logger == nil {
		logger = logging.NewNop()
	}
	summary, err := ParseFile(path)
	if err != nil {
		logger.Warn("pto artifact unreadable",
			logging.String("path", path),
			logging.String("kind", services.FailureKind(err)),
			logging.Error(err),
		)
		return nil
	}
	density, ok := summary.Density()
	if !ok {
		logger.Debug("pto artifact has no control points", logging.String("path", path))
		return nil
	}
	logger.Debug("pto artifact parsed",
		logging.String("path", path),
		logging.Int("records", summary.Records),
		logging.Int("distinct_types", summary.DistinctTypes()),
		logging.Float64("density", density),
	)
	return []float64{density}
}
