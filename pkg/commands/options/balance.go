package options

import (
	"github.com/spf13/cobra"
)

// BalanceOptions carries the incoming balance adjustment flags.
type BalanceOptions struct {
	Set  float64
	Link bool
}

func AddBalanceArgs(cmd *cobra.Command, o *BalanceOptions) {
	cmd.Flags().Float64Var(&o.Set, "set", 0,
		"Manually override the incoming balance for the cycle.")
	cmd.Flags().BoolVar(&o.Link, "link", false,
		"Re-resolve the incoming balance from cycle history.")
}

// GetSet returns the override value, or nil when the flag was not given.
func (o *BalanceOptions) GetSet(cmd *cobra.Command) *float64 {
	if !cmd.Flags().Changed("set") {
		return nil
	}
	v := o.Set
	return &v
}
