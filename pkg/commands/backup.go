package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/shiftcycle/pkg/runner/backup"
	"tableflip.dev/shiftcycle/pkg/store"
)

func addBackup(topLevel *cobra.Command) {
	var output string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export all data and preferences as one JSON blob",
		Example: `
shiftcycle backup
shiftcycle backup -o shiftcycle-backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Backup{
				Output:      output,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"File to write the backup to. Defaults to stdout.")

	topLevel.AddCommand(cmd)
}

func addRestore(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "restore [file]",
		Short: "Replace all data and preferences from a backup file",
		Example: `
shiftcycle restore shiftcycle-backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected a backup file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Restore{
				File:        args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
