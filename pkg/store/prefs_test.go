package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPrefsRoundTrip(t *testing.T) {
	p := newTestStore(t)

	if p.Prefs() != (Prefs{}) {
		t.Fatalf("fresh store should have zero prefs")
	}

	want := Prefs{AnchorDate: "2024-06-10", StaffNumber: "A1234"}
	if err := p.SavePrefs(want); err != nil {
		t.Fatalf("SavePrefs() = %v", err)
	}
	if got := p.Prefs(); got != want {
		t.Fatalf("Prefs() = %+v, want %+v", got, want)
	}
}

func TestPrefsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, prefsFile), []byte("<xml/>"), 0o644); err != nil {
		t.Fatalf("writing corrupt prefs: %v", err)
	}
	if p.Prefs() != (Prefs{}) {
		t.Fatalf("corrupt prefs did not degrade to zero")
	}
}

func TestAnchorTime(t *testing.T) {
	tests := []struct {
		name   string
		prefs  Prefs
		want   time.Time
		wantOK bool
	}{
		{"set", Prefs{AnchorDate: "2024-01-15"}, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local), true},
		{"unset", Prefs{}, time.Time{}, false},
		{"garbage", Prefs{AnchorDate: "15/01/2024"}, time.Time{}, false},
	}
	for _, tc := range tests {
		got, ok := tc.prefs.AnchorTime()
		if ok != tc.wantOK {
			t.Fatalf("%s: ok = %v, want %v", tc.name, ok, tc.wantOK)
		}
		if ok && !got.Equal(tc.want) {
			t.Fatalf("%s: AnchorTime() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
