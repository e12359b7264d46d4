package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeAlign(); err != nil {
		return err
	}
	c.normalizeSelection()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeAlign() error {
	c.Align.Binary = strings.TrimSpace(c.Align.Binary)
	if c.Align.Binary == "" {
		c.Align.Binary = defaultAlignBinary
	}
	if strings.TrimSpace(c.Align.TempDir) != "" {
		dir, err := ExpandPath(strings.TrimSpace(c.Align.TempDir))
		if err != nil {
			return fmt.Errorf("align.temp_dir: %w", err)
		}
		c.Align.TempDir = dir
	}
	sets := make([][]string, 0, len(c.Align.ParameterSets))
	for _, set := range c.Align.ParameterSets {
		flags := make([]string, 0, len(set))
		for _, flag := range set {
			if flag = strings.TrimSpace(flag); flag != "" {
				flags = append(flags, flag)
			}
		}
		sets = append(sets, flags)
	}
	c.Align.ParameterSets = sets
	return nil
}

func (c *Config) normalizeSelection() {
	exts := make([]string, 0, len(c.Selection.Extensions))
	seen := make(map[string]struct{}, len(c.Selection.Extensions))
	for _, ext := range c.Selection.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	c.Selection.Extensions = exts
	c.Selection.Ordering = strings.ToLower(strings.TrimSpace(c.Selection.Ordering))
	if c.Selection.Ordering == "" {
		c.Selection.Ordering = defaultOrdering
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
