package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

// RangeOptions selects an inclusive calendar date range.
type RangeOptions struct {
	FromString string
	ToString   string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.FromString, "from", "",
		`First date of the range, example: --from="2026-02-10".`)
	cmd.Flags().StringVar(&o.ToString, "to", "",
		`Last date of the range, inclusive.`)
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (o *RangeOptions) GetFrom() (time.Time, error) {
	return time.ParseInLocation(cycle.LayoutISO, o.FromString, time.Local)
}

func (o *RangeOptions) GetTo() (time.Time, error) {
	return time.ParseInLocation(cycle.LayoutISO, o.ToString, time.Local)
}
