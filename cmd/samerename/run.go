package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/piotrcurious/same-picture-finder/internal/dirlock"
	"github.com/piotrcurious/same-picture-finder/internal/logging"
	"github.com/piotrcurious/same-picture-finder/internal/overlap"
	"github.com/piotrcurious/same-picture-finder/internal/sequencer"
	"github.com/piotrcurious/same-picture-finder/internal/services"
	"github.com/piotrcurious/same-picture-finder/internal/services/alignstack"
)

func runSequence(cmd *cobra.Command, ctx *commandContext, dir string, dryRun bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = services.WithRunID(runCtx, uuid.NewString())
	runCtx = services.WithDirectory(runCtx, absDir)
	runLogger := logging.WithContext(runCtx, logging.NewComponentLogger(logger, "cli"))

	lock, err := dirlock.Acquire(cfg.Align.TempDir, absDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			runLogger.Warn("directory lock release failed", logging.Error(err))
		}
	}()

	client, err := alignstack.New(cfg.AlignBinary(), cfg.Align.TimeoutSeconds, alignstack.WithLogger(logger))
	if err != nil {
		return err
	}
	sets := make([]overlap.ParameterSet, 0, len(cfg.Align.ParameterSets))
	for _, set := range cfg.Align.ParameterSets {
		sets = append(sets, overlap.ParameterSet(set))
	}
	agg := overlap.New(client, sets,
		overlap.WithTempDir(cfg.Align.TempDir),
		overlap.WithLogger(logger),
	)

	policy := sequencer.PolicyFromConfig(cfg)
	policy.DryRun = dryRun
	seq := sequencer.New(agg, policy, sequencer.WithLogger(logger))

	runLogger.Info("sequencing directory",
		logging.Int("parameter_sets", len(sets)),
		logging.Float64("threshold", policy.Threshold),
		logging.Bool("dry_run", dryRun),
	)
	result, err := seq.Run(runCtx, absDir)
	if err != nil {
		return err
	}
	if err := runCtx.Err(); err != nil {
		runLogger.Warn("run interrupted", logging.Error(err))
	}

	printResult(cmd, result)
	return nil
}

func printResult(cmd *cobra.Command, result sequencer.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Outcome: %s\n", result.Outcome)
	fmt.Fprintf(out, "Candidates: %d\n", len(result.Candidates))
	if result.HasSummary {
		s := result.Summary
		fmt.Fprintf(out, "Overlap: mean %.4f, median %.4f, std %.4f over %d runs\n", s.Mean, s.Median, s.StdDev, s.Count)
	}
	if len(result.Renames) == 0 {
		return
	}
	rows := make([]table.Row, 0, len(result.Renames))
	for i, rn := range result.Renames {
		status := "renamed"
		switch {
		case rn.Err != nil:
			status = "failed: " + rn.Err.Error()
		case result.Outcome == sequencer.OutcomePlanned:
			status = "planned"
		}
		rows = append(rows, table.Row{i + 1, rn.From, rn.To, status})
	}
	printTable(out, table.Row{"#", "From", "To", "Status"}, rows, "#")
}
