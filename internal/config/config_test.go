package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/piotrcurious/same-picture-finder/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "samerename", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Align.Binary != "align_image_stack" {
		t.Fatalf("unexpected binary: %q", cfg.Align.Binary)
	}
	if cfg.Align.TimeoutSeconds != 0 {
		t.Fatalf("expected no timeout by default, got %d", cfg.Align.TimeoutSeconds)
	}
	wantSets := [][]string{{"--corr=0.8"}, {"--corr=0.9"}, {"--corr=0.7"}}
	if !reflect.DeepEqual(cfg.Align.ParameterSets, wantSets) {
		t.Fatalf("unexpected parameter sets: %v", cfg.Align.ParameterSets)
	}
	if cfg.Selection.OverlapThreshold != 0.9 {
		t.Fatalf("unexpected threshold: %v", cfg.Selection.OverlapThreshold)
	}
	if cfg.Selection.Prefix != "seq_" {
		t.Fatalf("unexpected prefix: %q", cfg.Selection.Prefix)
	}
	wantExts := []string{".jpg", ".jpeg", ".png", ".tiff", ".tif"}
	if !reflect.DeepEqual(cfg.Selection.Extensions, wantExts) {
		t.Fatalf("unexpected extensions: %v", cfg.Selection.Extensions)
	}
	if cfg.Selection.MinCandidates != 2 {
		t.Fatalf("unexpected min candidates: %d", cfg.Selection.MinCandidates)
	}
	if cfg.Selection.Ordering != config.OrderingCreationTime {
		t.Fatalf("unexpected ordering: %q", cfg.Selection.Ordering)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samerename.toml")
	content := `
[align]
binary = "/opt/hugin/bin/align_image_stack"
timeout_seconds = 30
temp_dir = "` + filepath.ToSlash(dir) + `/artifacts"
parameter_sets = [[" --corr=0.5 ", "-c", "16"]]

[selection]
overlap_threshold = 1.5
prefix = "burst_"
extensions = ["JPG", ".Heic", ".jpg"]
ordering = " EXIF "

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit path to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.AlignBinary() != "/opt/hugin/bin/align_image_stack" {
		t.Fatalf("unexpected binary: %q", cfg.AlignBinary())
	}
	if cfg.Align.TimeoutSeconds != 30 {
		t.Fatalf("unexpected timeout: %d", cfg.Align.TimeoutSeconds)
	}
	if cfg.Align.TempDir != filepath.Join(dir, "artifacts") {
		t.Fatalf("unexpected temp dir: %q", cfg.Align.TempDir)
	}
	if !reflect.DeepEqual(cfg.Align.ParameterSets, [][]string{{"--corr=0.5", "-c", "16"}}) {
		t.Fatalf("unexpected parameter sets: %v", cfg.Align.ParameterSets)
	}
	if cfg.Selection.OverlapThreshold != 1.5 || cfg.Selection.Prefix != "burst_" {
		t.Fatalf("unexpected selection: %+v", cfg.Selection)
	}
	if !reflect.DeepEqual(cfg.Selection.Extensions, []string{".jpg", ".heic"}) {
		t.Fatalf("unexpected extensions: %v", cfg.Selection.Extensions)
	}
	if cfg.Selection.Ordering != config.OrderingEXIF {
		t.Fatalf("unexpected ordering: %q", cfg.Selection.Ordering)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadMissingExplicitPathFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing file to be reported as absent")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Selection.Prefix != "seq_" {
		t.Fatalf("expected defaults, got %+v", cfg.Selection)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[selection]\nthreshold = 0.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error for unknown key, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"negative timeout", func(c *config.Config) { c.Align.TimeoutSeconds = -1 }, "timeout_seconds"},
		{"no parameter sets", func(c *config.Config) { c.Align.ParameterSets = nil }, "parameter_sets"},
		{"reserved output flag", func(c *config.Config) { c.Align.ParameterSets = [][]string{{"-o", "x.pto"}} }, "reserved"},
		{"negative threshold", func(c *config.Config) { c.Selection.OverlapThreshold = -0.1 }, "overlap_threshold"},
		{"empty prefix", func(c *config.Config) { c.Selection.Prefix = " " }, "prefix"},
		{"prefix with separator", func(c *config.Config) { c.Selection.Prefix = "a/b" }, "separators"},
		{"no extensions", func(c *config.Config) { c.Selection.Extensions = nil }, "extensions"},
		{"min candidates", func(c *config.Config) { c.Selection.MinCandidates = 1 }, "min_candidates"},
		{"ordering", func(c *config.Config) { c.Selection.Ordering = "mtime" }, "ordering"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestWriteSampleRoundTripsToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.WriteSample(path, false); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := config.WriteSample(path, false); !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected existing sample to be kept, got %v", err)
	}
	if err := config.WriteSample(path, true); err != nil {
		t.Fatalf("WriteSample overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	want := config.Default()
	if !reflect.DeepEqual(cfg.Align.ParameterSets, want.Align.ParameterSets) {
		t.Fatalf("sample parameter sets differ from defaults: %v", cfg.Align.ParameterSets)
	}
	if !reflect.DeepEqual(cfg.Selection, want.Selection) {
		t.Fatalf("sample selection differs from defaults: %+v", cfg.Selection)
	}
	if cfg.Logging != want.Logging {
		t.Fatalf("sample logging differs from defaults: %+v", cfg.Logging)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/photos")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "photos") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, _, _, err := config.Load(t.TempDir()); err == nil {
		t.Fatal("expected error when config path is a directory")
	}
}
