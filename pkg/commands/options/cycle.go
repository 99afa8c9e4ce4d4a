// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CycleOptions selects which cycle a command operates on. Cycle 0 is a
// real index, so "flag not given" is tracked through the flag set rather
// than a sentinel value.
type CycleOptions struct {
	Cycle  int
	Offset int
}

// AddCycleArgs wires the absolute cycle selection flag.
func AddCycleArgs(cmd *cobra.Command, o *CycleOptions) {
	cmd.Flags().IntVarP(&o.Cycle, "cycle", "c", 0,
		"Cycle index to operate on (0 = anchor cycle, negative = past). Defaults to the cycle containing today.")
}

// AddOffsetArgs wires relative navigation from today's cycle.
func AddOffsetArgs(cmd *cobra.Command, o *CycleOptions) {
	cmd.Flags().IntVar(&o.Offset, "offset", 0,
		"Navigate relative to the current cycle, example: --offset=-1 for the previous cycle.")
}

// GetCycle returns the selected cycle index, or nil when the flag was not
// given.
func (o *CycleOptions) GetCycle(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("cycle") {
		return nil
	}
	c := o.Cycle
	return &c
}
