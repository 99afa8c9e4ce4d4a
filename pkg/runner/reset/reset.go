package reset

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shiftcycle/pkg/store"
)

// Reset wipes every cycle record and the preferences.
type Reset struct {
	Confirm bool

	Persistence store.Persistence
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not reset, no persistence")
	}
	if !n.Confirm {
		return errors.New("refusing to wipe data without --confirm")
	}
	if err := n.Persistence.EraseAll(ctx); err != nil {
		return err
	}
	fmt.Println("All data erased.")
	return nil
}
