package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Align contains configuration for the external alignment tool.
type Align struct {
	Binary         string     `toml:"binary"`
	TimeoutSeconds int        `toml:"timeout_seconds"`
	TempDir        string     `toml:"temp_dir"`
	ParameterSets  [][]string `toml:"parameter_sets"`
}

// Selection contains the candidate filtering and acceptance policy.
type Selection struct {
	OverlapThreshold float64  `toml:"overlap_threshold"`
	Prefix           string   `toml:"prefix"`
	Extensions       []string `toml:"extensions"`
	MinCandidates    int      `toml:"min_candidates"`
	// Ordering is "ctime" (filesystem creation time) or "exif" (capture time,
	// falling back to creation time).
	Ordering string `toml:"ordering"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for samerename.
//
// Every field has a default matching the built-in behavior, so a missing
// config file is not an error.
type Config struct {
	Align     Align     `toml:"align"`
	Selection Selection `toml:"selection"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the expanded default config location.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load reads the config at path, or at the default location when path is
// empty, over the built-in defaults. It returns the normalized config, the
// path consulted and whether a file was found there. A missing file is not
// an error.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		if err := decodeFile(resolved, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

func decodeFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config %s: %s", path, strict.String())
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	switch {
	case err == nil && info.IsDir():
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	case err == nil:
		return expanded, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return expanded, false, nil
	default:
		return "", false, fmt.Errorf("stat config: %w", err)
	}
}

// AlignBinary returns the alignment executable name or path.
func (c *Config) AlignBinary() string {
	return c.Align.Binary
}

// ExpandPath resolves a leading ~ to the home directory and makes the result
// absolute. An empty path stays empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	return abs, nil
}

// Sample returns the annotated sample configuration.
func Sample() string {
	return sampleConfig
}

// WriteSample writes the sample configuration to path, creating parent
// directories. Unless overwrite is set an existing file is left alone and
// the returned error wraps fs.ErrExist.
func WriteSample(path string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	if _, err := f.WriteString(sampleConfig); err != nil {
		_ = f.Close()
		return fmt.Errorf("write sample config: %w", err)
	}
	return f.Close()
}
