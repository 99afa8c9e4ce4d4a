package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/shiftcycle/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "shiftcycle",
		Short: base.Wrap80("Track an 18-day work rotation and its hours balance on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addSet(topLevel)
	addApply(topLevel)
	addBalance(topLevel)
	addReport(topLevel)
	addBackup(topLevel)
	addRestore(topLevel)
	addReset(topLevel)
	addPrefs(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}
