package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/piotrcurious/same-picture-finder/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(newConfigInitCommand(), newConfigValidateCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool
	var toStdout bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the annotated sample configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if toStdout {
				_, err := io.WriteString(out, config.Sample())
				return err
			}

			target, err := config.ExpandPath(strings.TrimSpace(targetPath))
			if err == nil && target == "" {
				target, err = config.DefaultConfigPath()
			}
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			if err := config.WriteSample(target, overwrite); err != nil {
				if errors.Is(err, fs.ErrExist) {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				}
				return err
			}
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the sample instead of writing a file")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and show the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			printTable(out, table.Row{"Setting", "Value"}, effectiveSettings(cfg))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func effectiveSettings(cfg *config.Config) []table.Row {
	sets := make([]string, len(cfg.Align.ParameterSets))
	for i, set := range cfg.Align.ParameterSets {
		sets[i] = strings.Join(set, " ")
	}
	tempDir := cfg.Align.TempDir
	if tempDir == "" {
		tempDir = "(system temp)"
	}
	timeout := "none"
	if cfg.Align.TimeoutSeconds > 0 {
		timeout = fmt.Sprintf("%ds", cfg.Align.TimeoutSeconds)
	}
	return []table.Row{
		{"align.binary", cfg.Align.Binary},
		{"align.timeout_seconds", timeout},
		{"align.temp_dir", tempDir},
		{"align.parameter_sets", fmt.Sprintf("%d: %s", len(sets), strings.Join(sets, " | "))},
		{"selection.overlap_threshold", cfg.Selection.OverlapThreshold},
		{"selection.prefix", cfg.Selection.Prefix},
		{"selection.extensions", strings.Join(cfg.Selection.Extensions, " ")},
		{"selection.min_candidates", cfg.Selection.MinCandidates},
		{"selection.ordering", cfg.Selection.Ordering},
		{"logging.format", cfg.Logging.Format},
		{"logging.level", cfg.Logging.Level},
	}
}
