package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/commands/options"
	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/runner/apply"
	"tableflip.dev/shiftcycle/pkg/store"
	"tableflip.dev/shiftcycle/pkg/tracker"
)

func addApply(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}
	eo := &options.EntryOptions{}

	var entryType cycle.EntryType

	cmd := &cobra.Command{
		Use:   "apply [type]",
		Short: "Apply one entry type across a date range",
		Long: "Apply one entry type across a calendar date range. The range may span " +
			"several cycles; balances are chained forward through every adjacent cycle " +
			"the range touches.",
		Example: `
shiftcycle apply course --from 2026-02-10 --to 2026-02-14 --course "Sea Survival"
shiftcycle apply vl --from 2026-03-01 --to 2026-03-05
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one entry type")
			}
			var err error
			entryType, err = cycle.TypeForAlias(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := ro.GetFrom()
			if err != nil {
				return err
			}
			to, err := ro.GetTo()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := apply.Apply{
				From: from,
				To:   to,
				Type: entryType,
				Fields: tracker.Fields{
					Note:           eo.Note,
					CourseName:     eo.CourseName,
					CourseLocation: eo.CourseLocation,
					CustomHours:    eo.GetHours(cmd),
					StartTime:      eo.StartTime,
					EndTime:        eo.EndTime,
					BreakMinutes:   eo.GetBreak(cmd),
				},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, ro)
	options.AddEntryArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
