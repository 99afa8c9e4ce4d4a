package tracker

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

// Fields are the values stamped onto every day in an applied range. The
// assignment is a full replacement: fields left at their zero value clear
// whatever the day held before. Pointer fields distinguish "not provided"
// from a deliberate zero.
type Fields struct {
	Note           string
	CourseName     string
	CourseLocation string
	CustomHours    *float64
	StartTime      string
	EndTime        string
	BreakMinutes   *int
}

// Applied summarizes a range application for the caller.
type Applied struct {
	DayCount int
	Cycles   []int
}

// ApplyRange assigns one entry type across a calendar date range that may
// span multiple cycles. Touched cycles are processed in ascending order
// with the balance chained forward across index-adjacent cycles; a gap in
// the touched indices falls back to the gapped cycle's own stored balance.
// Non-active cycles are persisted immediately; the active cycle is updated
// in memory and left for the session's next flush.
func (s *Session) ApplyRange(ctx context.Context, anchor, start, end time.Time, t cycle.EntryType, f Fields) Applied {
	// Working copies and each touched cycle's own incoming balance.
	days := make(map[int][]cycle.DayEntry)
	storedBalance := make(map[int]float64)
	applied := Applied{}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		index, day := cycle.DateToCycleDay(anchor, date)

		working, ok := days[index]
		if !ok {
			if index == s.Index {
				working = append([]cycle.DayEntry(nil), s.Days...)
				storedBalance[index] = s.PreviousBalance
			} else {
				r := s.store.Load(ctx, index)
				working = r.Days
				storedBalance[index] = r.PreviousBalance
			}
			days[index] = working
		}

		working[day-1] = stamp(day, t, f)
		applied.DayCount++
	}

	applied.Cycles = s.applyGroups(ctx, days, storedBalance)
	return applied
}

// applyGroups runs the balance chain over the touched cycles in ascending
// index order and persists the results. Chaining is forward-adjacent only:
// a cycle whose predecessor in the touched set is not index-adjacent keeps
// its own stored incoming balance, since the cycles in between were never
// recomputed.
func (s *Session) applyGroups(ctx context.Context, days map[int][]cycle.DayEntry, storedBalance map[int]float64) []int {
	indices := make([]int, 0, len(days))
	for index := range days {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	var runningNet float64
	for i, index := range indices {
		startBalance := storedBalance[index]
		chained := false
		if i > 0 && index == indices[i-1]+1 {
			startBalance = runningNet
			chained = true
		}
		runningNet = cycle.ComputeStats(days[index], startBalance).NetBalance

		if index == s.Index {
			s.Days = days[index]
			if chained {
				s.PreviousBalance = startBalance
				s.Linked = true
			}
			continue
		}
		if err := s.store.Save(ctx, index, days[index], startBalance); err != nil {
			logrus.WithError(err).Warnf("cycle %d not saved", index)
		}
	}
	return indices
}

// stamp builds the replacement entry for one day of the range.
func stamp(dayID int, t cycle.EntryType, f Fields) cycle.DayEntry {
	e := cycle.DayEntry{
		DayID:          dayID,
		Type:           t,
		Note:           f.Note,
		CourseName:     f.CourseName,
		CourseLocation: f.CourseLocation,
		StartTime:      f.StartTime,
		EndTime:        f.EndTime,
		BreakMinutes:   f.BreakMinutes,
	}
	if f.CustomHours != nil {
		e.CustomHours = *f.CustomHours
	}
	return e
}
