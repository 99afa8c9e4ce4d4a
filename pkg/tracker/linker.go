package tracker

import (
	"context"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/store"
)

// Cycle history is sparse: the user can jump forward or backward without
// touching the cycles in between. The backward scan is capped so a jump
// far into the future stays cheap.
const (
	scanWindow = 100
	scanFloor  = -10
)

// ResolveIncomingBalance determines the balance a cycle should carry in
// when no explicit value has been saved for it. For the anchor cycle and
// earlier only the immediate predecessor is consulted; history before the
// anchor is never auto-chained further back. For later cycles the nearest
// saved predecessor inside the scan window wins, with cycle 0 as a final
// fallback. The second return reports whether a source cycle was found.
func ResolveIncomingBalance(ctx context.Context, p store.Persistence, targetIndex int) (float64, bool) {
	if targetIndex <= 0 {
		if p.Exists(ctx, targetIndex-1) {
			return endBalance(ctx, p, targetIndex-1), true
		}
		return 0, false
	}

	limit := targetIndex - scanWindow
	if limit < scanFloor {
		limit = scanFloor
	}
	for i := targetIndex - 1; i >= limit; i-- {
		if p.Exists(ctx, i) {
			return endBalance(ctx, p, i), true
		}
	}

	if p.Exists(ctx, 0) {
		return endBalance(ctx, p, 0), true
	}
	return 0, false
}

// endBalance computes the closing balance of a stored cycle using its own
// stored incoming balance.
func endBalance(ctx context.Context, p store.Persistence, index int) float64 {
	r := p.Load(ctx, index)
	return cycle.ComputeStats(r.Days, r.PreviousBalance).NetBalance
}
