package sequencer

import (
	"github.com/piotrcurious/same-picture-finder/internal/config"
)

// Policy is the immutable configuration of one sequencing run.
type Policy struct {
	Prefix        string
	Extensions    []string
	Threshold     float64
	MinCandidates int
	Ordering      string
	DryRun        bool
}

// DefaultPolicy returns the built-in policy.
func DefaultPolicy() Policy {
	cfg := config.Default()
	return PolicyFromConfig(&cfg)
}

// PolicyFromConfig maps the selection section of cfg to a Policy.
func PolicyFromConfig(cfg *config.Config) Policy {
	return Policy{
		Prefix:        cfg.Selection.Prefix,
		Extensions:    append([]string(nil), cfg.Selection.Extensions...),
		Threshold:     cfg.Selection.OverlapThreshold,
		MinCandidates: cfg.Selection.MinCandidates,
		Ordering:      cfg.Selection.Ordering,
	}
}
