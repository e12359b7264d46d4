package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlign(); err != nil {
		return err
	}
	if err := c.validateSelection(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlign() error {
	if c.Align.TimeoutSeconds < 0 {
		return errors.New("align.timeout_seconds must be >= 0")
	}
	if len(c.Align.ParameterSets) == 0 {
		return errors.New("align.parameter_sets must contain at least one set")
	}
	for i, set := range c.Align.ParameterSets {
		for _, flag := range set {
			if flag == "-o" || strings.HasPrefix(flag, "-o=") {
				return fmt.Errorf("align.parameter_sets[%d]: -o is reserved for the artifact path", i)
			}
		}
	}
	return nil
}

func (c *Config) validateSelection() error {
	threshold := c.Selection.OverlapThreshold
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return errors.New("selection.overlap_threshold must be a finite value >= 0")
	}
	prefix := c.Selection.Prefix
	if strings.TrimSpace(prefix) == "" {
		return errors.New("selection.prefix must be set")
	}
	if strings.ContainsAny(prefix, `/\`) {
		return errors.New("selection.prefix must not contain path separators")
	}
	if len(c.Selection.Extensions) == 0 {
		return errors.New("selection.extensions must list at least one extension")
	}
	if c.Selection.MinCandidates < 2 {
		return errors.New("selection.min_candidates must be >= 2")
	}
	switch c.Selection.Ordering {
	case OrderingCreationTime, OrderingEXIF:
	default:
		return fmt.Errorf("selection.ordering must be %q or %q, got %q", OrderingCreationTime, OrderingEXIF, c.Selection.Ordering)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
