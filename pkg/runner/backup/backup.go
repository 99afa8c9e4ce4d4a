package backup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/shiftcycle/pkg/store"
)

// Backup exports the whole store plus preferences as one JSON blob, to a
// file or to stdout.
type Backup struct {
	Output string

	Persistence store.Persistence
}

func (n *Backup) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not backup, no persistence")
	}
	data, err := n.Persistence.Export(ctx)
	if err != nil {
		return err
	}
	if n.Output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(n.Output, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	fmt.Printf("Backup written to %s\n", n.Output)
	return nil
}

// Restore replaces the store and preferences from a backup file. Nothing
// is erased unless the file parses and validates.
type Restore struct {
	File string

	Persistence store.Persistence
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not restore, no persistence")
	}
	data, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if err := n.Persistence.Import(ctx, data); err != nil {
		return err
	}
	fmt.Println("Data restored.")
	return nil
}
