package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

// backup is the export blob: every cycle record keyed by its index, plus
// the user preferences. Import replaces both wholesale.
type backup struct {
	Records map[string]Record `json:"records"`
	Prefs   Prefs             `json:"prefs"`
}

// Export serializes the entire store and preferences as one JSON blob.
func (p *persistence) Export(ctx context.Context) ([]byte, error) {
	b := backup{Records: make(map[string]Record), Prefs: p.Prefs()}
	for key := range p.d.Keys(ctx.Done()) {
		index, err := fromKey(key)
		if err != nil {
			logrus.WithError(err).Warn("store: skipping foreign key on export")
			continue
		}
		b.Records[strconv.Itoa(index)] = p.Load(ctx, index)
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: encode backup: %w", err)
	}
	return data, nil
}

// Import replaces the store and preferences with the contents of a backup
// blob. The blob is fully parsed and validated before anything is erased,
// so a rejected import leaves the existing data untouched.
func (p *persistence) Import(ctx context.Context, data []byte) error {
	var b backup
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("store: backup does not parse: %w", err)
	}
	indexed := make(map[int]Record, len(b.Records))
	for key, r := range b.Records {
		index, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("store: backup has bad cycle index %q", key)
		}
		if !cycle.Valid(r.Days) {
			return fmt.Errorf("store: backup cycle %d is malformed", index)
		}
		indexed[index] = r
	}

	if err := p.EraseAll(ctx); err != nil {
		return err
	}
	for index, r := range indexed {
		if err := p.Save(ctx, index, r.Days, r.PreviousBalance); err != nil {
			return err
		}
	}
	if b.Prefs != (Prefs{}) {
		if err := p.SavePrefs(b.Prefs); err != nil {
			return err
		}
	}
	return nil
}
