package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/store"
)

// linkTolerance is how close a stored balance must be to the resolved one
// before it is reported as linked. Purely a status signal.
const linkTolerance = 0.01

// Session is the working copy of the cycle the user is looking at. All
// edits happen against the session; Flush writes them back only when
// something actually changed, so navigation alone never persists stale
// data.
type Session struct {
	Index           int
	Days            []cycle.DayEntry
	PreviousBalance float64

	// Linked reports that PreviousBalance came from (or agrees with) the
	// balance resolved from cycle history rather than a manual edit.
	Linked bool

	store store.Persistence

	savedDays    string
	savedBalance float64
}

// Open loads the cycle at index into a new session. When no record exists
// the incoming balance is resolved from history as a helpful default;
// when one does, its stored balance is authoritative and linkage is only
// reported, never applied.
func Open(ctx context.Context, p store.Persistence, index int) *Session {
	s := &Session{store: p}
	s.load(ctx, index)
	return s
}

// Switch flushes the current cycle (if dirty) and loads another.
func (s *Session) Switch(ctx context.Context, newIndex int) {
	s.Flush(ctx)
	s.load(ctx, newIndex)
}

func (s *Session) load(ctx context.Context, index int) {
	existed := s.store.Exists(ctx, index)
	r := s.store.Load(ctx, index)

	s.Index = index
	s.Days = r.Days

	balance, linked := ResolveIncomingBalance(ctx, s.store, index)
	if existed {
		// Manual edits must never be silently overwritten by
		// auto-linking.
		s.PreviousBalance = r.PreviousBalance
		s.Linked = linked && math.Abs(balance-r.PreviousBalance) < linkTolerance
	} else {
		s.PreviousBalance = balance
		s.Linked = linked
	}

	s.savedDays = daysFingerprint(s.Days)
	s.savedBalance = s.PreviousBalance
}

// Dirty reports whether the session differs from what was last loaded or
// saved for this cycle.
func (s *Session) Dirty() bool {
	return daysFingerprint(s.Days) != s.savedDays || s.PreviousBalance != s.savedBalance
}

// Flush persists the session if it is dirty. A write failure is reported
// and swallowed: the in-memory state stays authoritative for the session
// and a later flush will retry.
func (s *Session) Flush(ctx context.Context) {
	if !s.Dirty() {
		return
	}
	if err := s.store.Save(ctx, s.Index, s.Days, s.PreviousBalance); err != nil {
		logrus.WithError(err).Warnf("cycle %d not saved", s.Index)
		return
	}
	s.savedDays = daysFingerprint(s.Days)
	s.savedBalance = s.PreviousBalance
}

// SetDay replaces the entry at e.DayID.
func (s *Session) SetDay(e cycle.DayEntry) error {
	if e.DayID < 1 || e.DayID > len(s.Days) {
		return fmt.Errorf("day %d out of range 1..%d", e.DayID, len(s.Days))
	}
	s.Days[e.DayID-1] = e
	return nil
}

// Day returns the entry at the 1-based day position.
func (s *Session) Day(dayID int) (cycle.DayEntry, error) {
	if dayID < 1 || dayID > len(s.Days) {
		return cycle.DayEntry{}, fmt.Errorf("day %d out of range 1..%d", dayID, len(s.Days))
	}
	return s.Days[dayID-1], nil
}

// SetBalance overrides the incoming balance by hand, breaking the link.
func (s *Session) SetBalance(v float64) {
	s.PreviousBalance = v
	s.Linked = false
}

// Relink re-resolves the incoming balance from cycle history.
func (s *Session) Relink(ctx context.Context) {
	s.PreviousBalance, s.Linked = ResolveIncomingBalance(ctx, s.store, s.Index)
}

// Stats computes the session's current stats.
func (s *Session) Stats() cycle.Stats {
	return cycle.ComputeStats(s.Days, s.PreviousBalance)
}

func daysFingerprint(days []cycle.DayEntry) string {
	b, err := json.Marshal(days)
	if err != nil {
		return ""
	}
	return string(b)
}
