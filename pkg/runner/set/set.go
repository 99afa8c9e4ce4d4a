package set

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/printers"
	"tableflip.dev/shiftcycle/pkg/store"
	"tableflip.dev/shiftcycle/pkg/tracker"
)

// Set replaces a single day's entry. When no hours are given for an entry
// type that needs them, they are derived from the start/end times.
type Set struct {
	Cycle *int
	Day   int
	Type  cycle.EntryType

	Hours          *float64
	Note           string
	CourseName     string
	CourseLocation string
	StartTime      string
	EndTime        string
	BreakMinutes   *int

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set, no persistence")
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

	e := cycle.DayEntry{
		DayID:          n.Day,
		Type:           n.Type,
		Note:           n.Note,
		CourseName:     n.CourseName,
		CourseLocation: n.CourseLocation,
		StartTime:      n.StartTime,
		EndTime:        n.EndTime,
		BreakMinutes:   n.BreakMinutes,
	}
	switch {
	case n.Hours != nil:
		e.CustomHours = *n.Hours
	case needsHours(n.Type):
		e.CustomHours = cycle.DerivedHours(n.StartTime, n.EndTime, n.BreakMinutes)
	}

	if err := s.SetDay(e); err != nil {
		return err
	}
	s.Flush(ctx)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Calendar(s.Days, cycle.CycleStart(anchor, s.Index))
	pp.Stats(s.Stats(), s.PreviousBalance, s.Linked)
	return nil
}

// needsHours reports whether the type interprets CustomHours at all.
func needsHours(t cycle.EntryType) bool {
	switch t {
	case cycle.Custom, cycle.TimeOffDeduction, cycle.CourseTraining, cycle.TransferredOut:
		return true
	}
	return false
}
