package sequencer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/piotrcurious/same-picture-finder/internal/capture"
)

// Candidate is an image eligible for sequencing.
type Candidate struct {
	Name    string
	Path    string
	Created time.Time
	ModTime time.Time
}

// Matcher classifies file names against a policy.
type Matcher struct {
	extensions map[string]struct{}
	sequenced  *regexp.Regexp
	fold       cases.Caser
}

// NewMatcher builds a Matcher for the policy's extensions and prefix. A
// Matcher is not safe for concurrent use.
func NewMatcher(policy Policy) *Matcher {
	m := &Matcher{
		extensions: make(map[string]struct{}, len(policy.Extensions)),
		sequenced:  regexp.MustCompile("^" + regexp.QuoteMeta(policy.Prefix) + "[0-9]+_"),
		fold:       cases.Fold(),
	}
	for _, ext := range policy.Extensions {
		m.extensions[m.fold.String(ext)] = struct{}{}
	}
	return m
}

// IsImage reports whether name has a recognised image extension.
func (m *Matcher) IsImage(name string) bool {
	_, ok := m.extensions[m.fold.String(filepath.Ext(name))]
	return ok
}

// IsSequenced reports whether name already carries the sequence prefix
// followed by digits and an underscore.
func (m *Matcher) IsSequenced(name string) bool {
	return m.sequenced.MatchString(name)
}

// ListCandidates returns the unsequenced images in dir ordered by the
// timestamp from order, oldest first, ties broken by name.
func ListCandidates(dir string, policy Policy, order capture.Func) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	if order == nil {
		order = capture.CreationTime
	}

	matcher := NewMatcher(policy)
	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !matcher.IsImage(name) || matcher.IsSequenced(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		path := filepath.Join(dir, name)
		candidates = append(candidates, Candidate{
			Name:    name,
			Path:    path,
			Created: order(path, info),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].Created.Equal(candidates[j].Created) {
			return candidates[i].Created.Before(candidates[j].Created)
		}
		return strings.Compare(candidates[i].Name, candidates[j].Name) < 0
	})
	return candidates, nil
}

// Paths returns the candidate paths in order.
func Paths(candidates []Candidate) []string {
	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.Path
	}
	return paths
}
