package tracker

import (
	"context"
	"math"
	"testing"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

// Closing balance of a full regular cycle with no carry-in.
const allRegularNet = 18*cycle.RegularShiftHours - cycle.TargetHours // 321.36

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveAnchorUsesImmediatePredecessor(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.put(-1, fullCycle(cycle.RegularShift), 2)

	balance, linked := ResolveIncomingBalance(ctx, m, 0)
	if !linked {
		t.Fatalf("expected linked balance")
	}
	if !almostEqual(balance, allRegularNet+2) {
		t.Fatalf("balance = %v, want %v", balance, allRegularNet+2)
	}
}

func TestResolveAnchorWithoutHistory(t *testing.T) {
	ctx := context.Background()

	balance, linked := ResolveIncomingBalance(ctx, newMemStore(), 0)
	if linked || balance != 0 {
		t.Fatalf("got (%v, %v), want (0, false)", balance, linked)
	}
}

func TestResolveBeforeAnchorNeverScans(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	// A record two cycles back must not be found: anchor-or-earlier
	// linking looks exactly one cycle back.
	m.put(-4, fullCycle(cycle.RegularShift), 0)

	balance, linked := ResolveIncomingBalance(ctx, m, -2)
	if linked || balance != 0 {
		t.Fatalf("got (%v, %v), want (0, false)", balance, linked)
	}

	m.put(-3, fullCycle(cycle.RegularShift), 0)
	balance, linked = ResolveIncomingBalance(ctx, m, -2)
	if !linked || !almostEqual(balance, allRegularNet) {
		t.Fatalf("got (%v, %v), want (%v, true)", balance, linked, allRegularNet)
	}
}

func TestResolveFindsNearestPredecessor(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	// Old off-day history at -2, a regular cycle nearer at 5.
	m.put(-2, fullCycle(cycle.OffDay), 0)
	m.put(5, fullCycle(cycle.RegularShift), 0)

	balance, linked := ResolveIncomingBalance(ctx, m, 6)
	if !linked {
		t.Fatalf("expected linked balance")
	}
	if !almostEqual(balance, allRegularNet) {
		t.Fatalf("balance = %v, want nearest predecessor's %v", balance, allRegularNet)
	}
}

func TestResolveScanReachesNegativeFloor(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.put(-10, fullCycle(cycle.RegularShift), 0)

	balance, linked := ResolveIncomingBalance(ctx, m, 5)
	if !linked || !almostEqual(balance, allRegularNet) {
		t.Fatalf("got (%v, %v), want record at the -10 floor", balance, linked)
	}

	m2 := newMemStore()
	m2.put(-11, fullCycle(cycle.RegularShift), 0)
	balance, linked = ResolveIncomingBalance(ctx, m2, 5)
	if linked || balance != 0 {
		t.Fatalf("got (%v, %v), record below the floor must not be found", balance, linked)
	}
}

func TestResolveWindowBound(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.put(50, fullCycle(cycle.RegularShift), 0)

	// 150 cycles back is outside the 100 cycle window.
	balance, linked := ResolveIncomingBalance(ctx, m, 200)
	if linked || balance != 0 {
		t.Fatalf("got (%v, %v), want (0, false)", balance, linked)
	}
}

func TestResolveFallsBackToAnchorCycle(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.put(50, fullCycle(cycle.OffDay), 0)
	m.put(0, fullCycle(cycle.RegularShift), 1)

	balance, linked := ResolveIncomingBalance(ctx, m, 200)
	if !linked {
		t.Fatalf("expected anchor cycle fallback")
	}
	if !almostEqual(balance, allRegularNet+1) {
		t.Fatalf("balance = %v, want %v", balance, allRegularNet+1)
	}
}

func TestResolveUsesStoredBalanceOfSource(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.put(2, fullCycle(cycle.RegularShift), -21.36)

	balance, linked := ResolveIncomingBalance(ctx, m, 3)
	if !linked || !almostEqual(balance, 300.00) {
		t.Fatalf("got (%v, %v), want (300.00, true)", balance, linked)
	}
}
