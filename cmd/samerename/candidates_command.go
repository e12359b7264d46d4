package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/piotrcurious/same-picture-finder/internal/sequencer"
)

func newCandidatesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates [dir]",
		Short: "List the images a run would sequence, in processing order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			dir, err := filepath.Abs(targetDirectory(args))
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}

			policy := sequencer.PolicyFromConfig(cfg)
			candidates, err := sequencer.New(nil, policy, sequencer.WithLogger(logger)).Candidates(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "No candidate images")
				return nil
			}
			rows := make([]table.Row, 0, len(candidates))
			for i, c := range candidates {
				rows = append(rows, table.Row{
					i + 1,
					c.Name,
					c.Created.Local().Format(time.DateTime),
					sequencer.TargetName(policy.Prefix, i+1, c.Name),
				})
			}
			printTable(out, table.Row{"#", "Name", "Ordered By", "Would Become"}, rows, "#")
			if len(candidates) < max(2, policy.MinCandidates) {
				fmt.Fprintf(out, "Not enough images to sequence (need %d)\n", max(2, policy.MinCandidates))
			}
			return nil
		},
	}
}
