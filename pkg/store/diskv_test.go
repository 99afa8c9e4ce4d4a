package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func newTestStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	return p
}

func regularCycle() []cycle.DayEntry {
	days := cycle.EmptyCycle()
	for i := range days {
		days[i].Type = cycle.RegularShift
	}
	return days
}

func TestLoadMissingCycle(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	if p.Exists(ctx, 3) {
		t.Fatalf("Exists() = true for a cycle never saved")
	}
	r := p.Load(ctx, 3)
	if !reflect.DeepEqual(r, DefaultRecord()) {
		t.Fatalf("Load() = %+v, want the default record", r)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	days := regularCycle()
	days[2].Note = "double crewed"
	brk := 45
	days[2].BreakMinutes = &brk

	for _, index := range []int{0, 7, -3} {
		if err := p.Save(ctx, index, days, 12.5); err != nil {
			t.Fatalf("Save(%d) = %v", index, err)
		}
		if !p.Exists(ctx, index) {
			t.Fatalf("Exists(%d) = false after save", index)
		}
		r := p.Load(ctx, index)
		if r.PreviousBalance != 12.5 {
			t.Fatalf("Load(%d).PreviousBalance = %v", index, r.PreviousBalance)
		}
		if !reflect.DeepEqual(r.Days, days) {
			t.Fatalf("Load(%d) days do not round trip", index)
		}
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if err := p.Save(ctx, 1, regularCycle(), 0); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cycle", "1"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupting record: %v", err)
	}

	r := p.Load(ctx, 1)
	if !reflect.DeepEqual(r, DefaultRecord()) {
		t.Fatalf("corrupt record did not degrade to the default")
	}
}

func TestLoadShortCycle(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	// 17 days is not a cycle; the read path rejects it.
	if err := p.Save(ctx, 2, regularCycle()[:17], 4); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	r := p.Load(ctx, 2)
	if !reflect.DeepEqual(r, DefaultRecord()) {
		t.Fatalf("short cycle did not degrade to the default")
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, index := range []int{0, 1, 42, -1, -10} {
		got, err := fromKey(toKey(index))
		if err != nil {
			t.Fatalf("fromKey(toKey(%d)) = %v", index, err)
		}
		if got != index {
			t.Fatalf("fromKey(toKey(%d)) = %d", index, got)
		}
	}
	if _, err := fromKey("prefs.json"); err == nil {
		t.Fatalf("expected error for a non-cycle key")
	}
}

func TestNegativeIndexFileName(t *testing.T) {
	pk := keyToPathTransform("cycle--3")
	if len(pk.Path) != 1 || pk.Path[0] != "cycle" || pk.FileName != "-3" {
		t.Fatalf("transform = %+v, want path [cycle] file -3", pk)
	}
	if got := pathToKeyTransform(pk); got != "cycle--3" {
		t.Fatalf("inverse transform = %q", got)
	}
}

func TestEraseAll(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	if err := p.Save(ctx, 0, regularCycle(), 1); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := p.SavePrefs(Prefs{AnchorDate: "2024-01-01"}); err != nil {
		t.Fatalf("SavePrefs() = %v", err)
	}

	if err := p.EraseAll(ctx); err != nil {
		t.Fatalf("EraseAll() = %v", err)
	}
	if p.Exists(ctx, 0) {
		t.Fatalf("record survived EraseAll")
	}
	if p.Prefs() != (Prefs{}) {
		t.Fatalf("prefs survived EraseAll")
	}
}
