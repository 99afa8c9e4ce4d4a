package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/commands/options"
	"tableflip.dev/shiftcycle/pkg/runner/balance"
	"tableflip.dev/shiftcycle/pkg/store"
)

func addBalance(topLevel *cobra.Command) {
	co := &options.CycleOptions{}
	bo := &options.BalanceOptions{}

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show or adjust a cycle's incoming balance",
		Example: `
shiftcycle balance
shiftcycle balance --cycle 3 --set 12.5
shiftcycle balance --cycle 3 --link
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := balance.Balance{
				Cycle:       co.GetCycle(cmd),
				Set:         bo.GetSet(cmd),
				Link:        bo.Link,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCycleArgs(cmd, co)
	options.AddBalanceArgs(cmd, bo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
