package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/commands/options"
	"tableflip.dev/shiftcycle/pkg/runner/report"
	"tableflip.dev/shiftcycle/pkg/store"
)

func addReport(topLevel *cobra.Command) {
	co := &options.CycleOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a markdown balance report for a cycle",
		Example: `
shiftcycle report
shiftcycle report --cycle -2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := report.Report{
				Cycle:       co.GetCycle(cmd),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCycleArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
