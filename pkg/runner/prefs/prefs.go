package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/store"
)

// Prefs shows or updates the stored preferences. The anchor date is the
// first day of any past cycle; the whole grid is tiled from it.
type Prefs struct {
	Anchor string
	Staff  *string

	Persistence store.Persistence
}

func (n *Prefs) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not read prefs, no persistence")
	}

	p := n.Persistence.Prefs()
	changed := false

	if n.Anchor != "" {
		if _, err := time.ParseInLocation(cycle.LayoutISO, n.Anchor, time.Local); err != nil {
			return fmt.Errorf("anchor date %q: expected YYYY-MM-DD", n.Anchor)
		}
		p.AnchorDate = n.Anchor
		changed = true
	}
	if n.Staff != nil {
		p.StaffNumber = *n.Staff
		changed = true
	}
	if changed {
		if err := n.Persistence.SavePrefs(p); err != nil {
			return err
		}
	}

	if p.AnchorDate == "" {
		fmt.Println("Anchor date: (not set)")
	} else {
		fmt.Printf("Anchor date: %s\n", p.AnchorDate)
		if anchor, ok := p.AnchorTime(); ok {
			fmt.Printf("Current cycle: %d\n", cycle.CurrentIndex(anchor, time.Now()))
		}
	}
	if p.StaffNumber != "" {
		fmt.Printf("Staff number: %s\n", p.StaffNumber)
	}
	return nil
}
