package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/report"
	"tableflip.dev/shiftcycle/pkg/store"
	"tableflip.dev/shiftcycle/pkg/tracker"
)

// Report writes a markdown balance report for one cycle to stdout.
type Report struct {
	Cycle *int

	Persistence store.Persistence
}

func (n *Report) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report, no persistence")
	}
	prefs := n.Persistence.Prefs()
	anchor, ok := prefs.AnchorTime()
	if !ok {
		return errors.New("anchor date not set, run: shiftcycle prefs --anchor YYYY-MM-DD")
	}

	index := cycle.CurrentIndex(anchor, time.Now())
	if n.Cycle != nil {
		index = *n.Cycle
	}

	s := tracker.Open(ctx, n.Persistence, index)
	fmt.Println(report.Generate(report.Input{
		Days:            s.Days,
		Stats:           s.Stats(),
		PreviousBalance: s.PreviousBalance,
		StaffNumber:     prefs.StaffNumber,
		CycleStart:      cycle.CycleStart(anchor, s.Index),
		CycleEnd:        cycle.CycleEnd(anchor, s.Index),
	}))
	return nil
}
