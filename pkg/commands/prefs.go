package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/runner/prefs"
	"tableflip.dev/shiftcycle/pkg/store"
)

func addPrefs(topLevel *cobra.Command) {
	var anchor, staff string

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or update the anchor date and staff number",
		Long: "Show or update preferences. The anchor date is the first day of ANY " +
			"previous cycle; all cycles are tiled in 18-day blocks from it.",
		Example: `
shiftcycle prefs
shiftcycle prefs --anchor 2024-06-15 --staff 12345
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := prefs.Prefs{
				Anchor:      anchor,
				Persistence: p,
			}
			if cmd.Flags().Changed("staff") {
				s.Staff = &staff
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "",
		"Anchor date, the first day of cycle 0, example: --anchor=2024-06-15.")
	cmd.Flags().StringVar(&staff, "staff", "",
		"Staff number used in generated reports.")

	topLevel.AddCommand(cmd)
}
