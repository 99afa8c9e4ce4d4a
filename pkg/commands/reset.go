package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/runner/reset"
	"tableflip.dev/shiftcycle/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all cycle data and preferences",
		Example: `
shiftcycle reset --confirm
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := reset.Reset{
				Confirm:     confirm,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false,
		"Actually erase. This cannot be undone.")

	topLevel.AddCommand(cmd)
}
