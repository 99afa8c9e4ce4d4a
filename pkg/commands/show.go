package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/commands/options"
	"tableflip.dev/shiftcycle/pkg/runner/show"
	"tableflip.dev/shiftcycle/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	co := &options.CycleOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a cycle's calendar and balance",
		Example: `
shiftcycle show
shiftcycle show --cycle 3
shiftcycle show --offset=-1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := show.Show{
				Cycle:       co.GetCycle(cmd),
				Offset:      co.Offset,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCycleArgs(cmd, co)
	options.AddOffsetArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
