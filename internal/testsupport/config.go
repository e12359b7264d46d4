// Package testsupport builds configs, fixture images and a fake
// align_image_stack for tests.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/piotrcurious/same-picture-finder/internal/config"
)

// AlignScript wraps a shell body so that $out holds the -o argument.
const AlignScript = `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
	if [ "$1" = "-o" ]; then
		out="$2"
		shift 2
		continue
	fi
	shift
done
%s
`

// DenseControlPoints writes one control point record to the artifact.
const DenseControlPoints = `printf 'c n0 N1 x1 y1 X2 Y2 t0\n' > "$out"`

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig returns the default config with a per-test scratch directory and
// JSON logging.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	scratch := filepath.Join(base, "scratch")
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		t.Fatalf("mkdir scratch: %v", err)
	}
	cfgVal := config.Default()
	cfgVal.Align.TempDir = scratch
	cfgVal.Logging.Format = "json"
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithAlignScript installs a fake align_image_stack running body and points
// the config at it.
func WithAlignScript(body string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Align.Binary = WriteAlignScript(b.t, filepath.Join(b.baseDir, "bin"), body)
	}
}

// WithParameterSets replaces the configured parameter sets.
func WithParameterSets(sets ...[]string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Align.ParameterSets = sets
	}
}

// WithThreshold sets the overlap threshold.
func WithThreshold(threshold float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Selection.OverlapThreshold = threshold
	}
}

// WriteAlignScript writes an executable align_image_stack into dir and
// returns its path.
func WriteAlignScript(t testing.TB, dir, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, "align_image_stack")
	if err := os.WriteFile(path, []byte(fmt.Sprintf(AlignScript, body)), 0o755); err != nil {
		t.Fatalf("write align stub: %v", err)
	}
	return path
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// BaseDir returns the temp directory backing cfg.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Align.TempDir)
}
