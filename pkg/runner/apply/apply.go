package apply

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/store"
	"tableflip.dev/shiftcycle/pkg/tracker"
)

// Apply stamps one entry type across a calendar date range, recomputing
// chained balances for every cycle the range touches.
type Apply struct {
	From time.Time
	To   time.Time
	Type cycle.EntryType

	Fields tracker.Fields

	Persistence store.Persistence
}

func (n *Apply) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not apply, no persistence")
	}
	anchor, ok := n.Persistence.Prefs().AnchorTime()
	if !ok {
		return errors.New("anchor date not set, run: shiftcycle prefs --anchor YYYY-MM-DD")
	}
	if n.To.Before(n.From) {
		return errors.New("range end is before range start")
	}

	s := tracker.Open(ctx, n.Persistence, cycle.CurrentIndex(anchor, time.Now()))
	applied := s.ApplyRange(ctx, anchor, n.From, n.To, n.Type, n.Fields)
	s.Flush(ctx)

	fmt.Printf("Applied %s to %d day(s) across %d cycle(s)\n",
		n.Type, applied.DayCount, len(applied.Cycles))
	return nil
}
