package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"github.com/sirupsen/logrus"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

// Record is the persisted unit per cycle index.
type Record struct {
	Days            []cycle.DayEntry `json:"days"`
	PreviousBalance float64          `json:"previousBalance"`
}

// DefaultRecord materializes the record used whenever a cycle has never
// been saved: a full cycle of off days and no carried balance.
func DefaultRecord() Record {
	return Record{Days: cycle.EmptyCycle()}
}

// Persistence defines the persistence contract for cycle records and user
// preferences. Reads never fail: a missing, unreadable or malformed record
// degrades to the default record so the caller always has a usable cycle.
type Persistence interface {
	Load(ctx context.Context, index int) Record
	Save(ctx context.Context, index int, days []cycle.DayEntry, previousBalance float64) error
	Exists(ctx context.Context, index int) bool
	EraseAll(ctx context.Context) error
	Prefs() Prefs
	SavePrefs(p Prefs) error
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(ctx context.Context, index int) Record {
	val, err := p.d.Read(toKey(index))
	if err != nil {
		// Missing is the common case; anything else is a degraded read.
		if p.d.Has(toKey(index)) {
			logrus.WithError(err).Warnf("store: read cycle %d", index)
		}
		return DefaultRecord()
	}
	var r Record
	if err := json.Unmarshal(val, &r); err != nil {
		logrus.WithError(err).Warnf("store: decode cycle %d, treating as absent", index)
		return DefaultRecord()
	}
	if !cycle.Valid(r.Days) {
		logrus.Warnf("store: cycle %d is malformed, treating as absent", index)
		return DefaultRecord()
	}
	return r
}

func (p *persistence) Save(ctx context.Context, index int, days []cycle.DayEntry, previousBalance float64) error {
	data, err := json.Marshal(Record{Days: days, PreviousBalance: previousBalance})
	if err != nil {
		return fmt.Errorf("store: encode cycle %d: %w", index, err)
	}
	if err := p.d.Write(toKey(index), data); err != nil {
		return fmt.Errorf("store: write cycle %d: %w", index, err)
	}
	return nil
}

func (p *persistence) Exists(ctx context.Context, index int) bool {
	return p.d.Has(toKey(index))
}

func (p *persistence) EraseAll(ctx context.Context) error {
	if err := p.d.EraseAll(); err != nil {
		return fmt.Errorf("store: erase: %w", err)
	}
	return p.erasePrefs()
}

const keyPrefix = "cycle"

func toKey(index int) string {
	return fmt.Sprintf("%s-%d", keyPrefix, index)
}

// fromKey recovers the cycle index from a store key.
func fromKey(key string) (int, error) {
	rest, ok := strings.CutPrefix(key, keyPrefix+"-")
	if !ok {
		return 0, fmt.Errorf("store: not a cycle key: %q", key)
	}
	return strconv.Atoi(rest)
}

// keyToPathTransform splits on the first dash only; the remainder is the
// file name and may itself start with a dash for negative cycle indices.
func keyToPathTransform(s string) *diskv.PathKey {
	if i := strings.Index(s, "-"); i > 0 {
		return &diskv.PathKey{
			Path:     []string{s[:i]},
			FileName: s[i+1:],
		}
	}
	return &diskv.PathKey{Path: []string{}, FileName: s}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
