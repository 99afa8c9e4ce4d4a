package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/commands/options"
	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/runner/set"
	"tableflip.dev/shiftcycle/pkg/store"
)

func addSet(topLevel *cobra.Command) {
	co := &options.CycleOptions{}
	eo := &options.EntryOptions{}

	long := strings.Builder{}
	long.WriteString("Set one day of a cycle to an entry type.\n\nTypes and aliases:\n")
	validArgs := make([]string, 0, len(cycle.Kinds()))
	for _, k := range cycle.Kinds() {
		long.WriteString(fmt.Sprintf("%s: %s\n", k.Code, strings.Join(k.Aliases, ", ")))
		validArgs = append(validArgs, k.Aliases[0])
	}

	var entryType cycle.EntryType

	cmd := &cobra.Command{
		Use:   "set [type]",
		Short: "Set one day of a cycle",
		Long:  long.String(),
		Example: `
shiftcycle set work --day 3
shiftcycle set vl --day 4 --note "annual leave"
shiftcycle set to --day 7 --hours 4.5
shiftcycle set course --day 2 --course "Sea Survival" --start 09:00 --end 16:30 --break 60
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one entry type")
			}
			var err error
			entryType, err = cycle.TypeForAlias(args[0])
			return err
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := set.Set{
				Cycle:          co.GetCycle(cmd),
				Day:            eo.Day,
				Type:           entryType,
				Hours:          eo.GetHours(cmd),
				Note:           eo.Note,
				CourseName:     eo.CourseName,
				CourseLocation: eo.CourseLocation,
				StartTime:      eo.StartTime,
				EndTime:        eo.EndTime,
				BreakMinutes:   eo.GetBreak(cmd),
				Persistence:    p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCycleArgs(cmd, co)
	options.AddDayArg(cmd, eo)
	options.AddEntryArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
