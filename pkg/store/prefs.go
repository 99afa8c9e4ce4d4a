package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

const prefsFile = "prefs.json"

// Prefs are the user preferences stored alongside the cycle records. The
// anchor date is the first day of cycle 0; every other cycle is tiled from
// it.
type Prefs struct {
	AnchorDate  string `json:"anchorDate,omitempty"`
	StaffNumber string `json:"staffNumber,omitempty"`
}

// AnchorTime parses the anchor date. The second return is false when no
// anchor has been configured or the stored value does not parse.
func (p Prefs) AnchorTime() (time.Time, bool) {
	if p.AnchorDate == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(cycle.LayoutISO, p.AnchorDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (p *persistence) prefsPath() string {
	return filepath.Join(p.basePath, prefsFile)
}

// Prefs loads the stored preferences; unreadable or missing preferences
// degrade to the zero value.
func (p *persistence) Prefs() Prefs {
	data, err := os.ReadFile(p.prefsPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).Warn("store: read prefs")
		}
		return Prefs{}
	}
	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		logrus.WithError(err).Warn("store: decode prefs, ignoring")
		return Prefs{}
	}
	return prefs
}

func (p *persistence) SavePrefs(prefs Prefs) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("store: encode prefs: %w", err)
	}
	path := p.prefsPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write prefs: %w", err)
	}
	return os.Rename(tmp, path)
}

func (p *persistence) erasePrefs() error {
	if err := os.Remove(p.prefsPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: erase prefs: %w", err)
	}
	return nil
}
