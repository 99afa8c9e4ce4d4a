package store

import (
	"context"
	"reflect"
	"testing"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	days := regularCycle()
	days[0].Note = "handover"
	if err := src.Save(ctx, 0, days, 0); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := src.Save(ctx, -2, cycle.EmptyCycle(), -10.5); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := src.SavePrefs(Prefs{AnchorDate: "2024-01-01", StaffNumber: "B77"}); err != nil {
		t.Fatalf("SavePrefs() = %v", err)
	}

	blob, err := src.Export(ctx)
	if err != nil {
		t.Fatalf("Export() = %v", err)
	}

	dst := newTestStore(t)
	if err := dst.Import(ctx, blob); err != nil {
		t.Fatalf("Import() = %v", err)
	}

	for _, index := range []int{0, -2} {
		if !reflect.DeepEqual(dst.Load(ctx, index), src.Load(ctx, index)) {
			t.Fatalf("cycle %d did not survive the round trip", index)
		}
	}
	if dst.Prefs() != src.Prefs() {
		t.Fatalf("prefs did not survive the round trip")
	}
}

func TestImportReplacesExistingData(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)
	if err := src.Save(ctx, 1, regularCycle(), 3); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	blob, err := src.Export(ctx)
	if err != nil {
		t.Fatalf("Export() = %v", err)
	}

	dst := newTestStore(t)
	if err := dst.Save(ctx, 9, regularCycle(), 99); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := dst.Import(ctx, blob); err != nil {
		t.Fatalf("Import() = %v", err)
	}
	if dst.Exists(ctx, 9) {
		t.Fatalf("pre-import data survived a restore")
	}
	if !dst.Exists(ctx, 1) {
		t.Fatalf("restored cycle missing")
	}
}

func TestImportRejectsBadBackup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		blob string
	}{
		{"not json", "]"},
		{"bad index", `{"records":{"seven":{"days":[],"previousBalance":0}}}`},
		{"short cycle", `{"records":{"0":{"days":[{"dayId":1,"type":"OFF_DAY"}],"previousBalance":0}}}`},
	}
	for _, tc := range tests {
		p := newTestStore(t)
		if err := p.Save(ctx, 5, regularCycle(), 1); err != nil {
			t.Fatalf("%s: Save() = %v", tc.name, err)
		}

		if err := p.Import(ctx, []byte(tc.blob)); err == nil {
			t.Fatalf("%s: Import accepted a bad backup", tc.name)
		}
		// A rejected import must leave the store untouched.
		if !p.Exists(ctx, 5) || p.Load(ctx, 5).PreviousBalance != 1 {
			t.Fatalf("%s: rejected import damaged the store", tc.name)
		}
	}
}
