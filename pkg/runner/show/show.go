package show

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/printers"
	"tableflip.dev/shiftcycle/pkg/store"
	"tableflip.dev/shiftcycle/pkg/tracker"
)

// Show prints one cycle's calendar and stats. Cycle selects an absolute
// index; Offset navigates relative to the cycle containing today.
type Show struct {
	Cycle       *int
	Offset      int
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	anchor, ok := n.Persistence.Prefs().AnchorTime()
	if !ok {
		return errors.New("anchor date not set, run: shiftcycle prefs --anchor YYYY-MM-DD")
	}

	today := cycle.CurrentIndex(anchor, time.Now())
	target := today + n.Offset
	if n.Cycle != nil {
		target = *n.Cycle
	}

	s := tracker.Open(ctx, n.Persistence, today)
	if target != today {
		s.Switch(ctx, target)
	}

	pp := printers.PrettyPrint{}
	start := cycle.CycleStart(anchor, s.Index)
	end := cycle.CycleEnd(anchor, s.Index)

	pp.NewLine()
	pp.Title(start.Format("Jan 02") + " - " + end.Format("Jan 02, 2006"))
	pp.Calendar(s.Days, start)
	pp.Stats(s.Stats(), s.PreviousBalance, s.Linked)
	return nil
}
