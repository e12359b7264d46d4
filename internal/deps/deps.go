// Package deps reports whether the external tools and scratch space a run
// relies on are present.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/piotrcurious/same-picture-finder/internal/config"
)

// Requirement names an executable the pipeline invokes.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status is the result of checking one requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements lists the tools needed for cfg.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{{
		Name:        "align_image_stack",
		Command:     cfg.AlignBinary(),
		Description: "Hugin control point search used to score overlap",
	}}
}

// CheckBinaries resolves each requirement on PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{
			Name:        req.Name,
			Command:     strings.TrimSpace(req.Command),
			Description: strings.TrimSpace(req.Description),
		}
		switch resolved, err := exec.LookPath(status.Command); {
		case status.Command == "":
			status.Detail = "command not configured"
		case err != nil:
			status.Detail = fmt.Sprintf("binary %q not found", status.Command)
		default:
			status.Available = true
			if resolved != status.Command {
				status.Detail = resolved
			}
		}
		results = append(results, status)
	}
	return results
}

// Missing returns the statuses that are unavailable.
func Missing(statuses []Status) []Status {
	var missing []Status
	for _, s := range statuses {
		if !s.Available {
			missing = append(missing, s)
		}
	}
	return missing
}
