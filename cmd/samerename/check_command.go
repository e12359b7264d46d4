package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/piotrcurious/same-picture-finder/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify external tools and scratch space",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			statuses = append(statuses, deps.CheckScratch(cfg.Align.TempDir))

			rows := make([]table.Row, 0, len(statuses))
			for _, s := range statuses {
				rows = append(rows, table.Row{s.Name, s.Command, yesNo(s.Available), s.Detail})
			}
			printTable(cmd.OutOrStdout(), table.Row{"Dependency", "Command", "Available", "Detail"}, rows)

			if missing := deps.Missing(statuses); len(missing) > 0 {
				names := make([]string, len(missing))
				for i, m := range missing {
					names[i] = m.Name
				}
				return fmt.Errorf("required dependencies missing: %s", strings.Join(names, ", "))
			}
			return nil
		},
	}
}
