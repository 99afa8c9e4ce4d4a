package balance

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/printers"
	"tableflip.dev/shiftcycle/pkg/store"
	"tableflip.dev/shiftcycle/pkg/tracker"
)

// Balance shows or adjusts a cycle's incoming balance. Set overrides it by
// hand, Link re-resolves it from cycle history.
type Balance struct {
	Cycle *int
	Set   *float64
	Link  bool

	Persistence store.Persistence
}

func (n *Balance) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not read balance, no persistence")
	}
	anchor, ok := n.Persistence.Prefs().AnchorTime()
	if !ok {
		return errors.New("anchor date not set, run: shiftcycle prefs --anchor YYYY-MM-DD")
	}

	index := cycle.CurrentIndex(anchor, time.Now())
	if n.Cycle != nil {
		index = *n.Cycle
	}

	s := tracker.Open(ctx, n.Persistence, index)
	switch {
	case n.Set != nil:
		s.SetBalance(*n.Set)
	case n.Link:
		s.Relink(ctx)
	}
	s.Flush(ctx)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Stats(s.Stats(), s.PreviousBalance, s.Linked)
	return nil
}
