package tracker

import (
	"context"
	"encoding/json"
	"errors"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/store"
)

// memStore is an in-memory Persistence for tests. Load and Save copy the
// day slices the way a real store's decode/encode would, so sessions can
// not alias stored state.
type memStore struct {
	records    map[int]store.Record
	prefs      store.Prefs
	saves      int
	failWrites bool
}

var _ store.Persistence = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{records: make(map[int]store.Record)}
}

func (m *memStore) put(index int, days []cycle.DayEntry, previousBalance float64) {
	m.records[index] = store.Record{Days: copyDays(days), PreviousBalance: previousBalance}
}

func (m *memStore) Load(ctx context.Context, index int) store.Record {
	r, ok := m.records[index]
	if !ok || !cycle.Valid(r.Days) {
		return store.DefaultRecord()
	}
	return store.Record{Days: copyDays(r.Days), PreviousBalance: r.PreviousBalance}
}

func (m *memStore) Save(ctx context.Context, index int, days []cycle.DayEntry, previousBalance float64) error {
	if m.failWrites {
		return errors.New("disk full")
	}
	m.saves++
	m.put(index, days, previousBalance)
	return nil
}

func (m *memStore) Exists(ctx context.Context, index int) bool {
	_, ok := m.records[index]
	return ok
}

func (m *memStore) EraseAll(ctx context.Context) error {
	m.records = make(map[int]store.Record)
	m.prefs = store.Prefs{}
	return nil
}

func (m *memStore) Prefs() store.Prefs {
	return m.prefs
}

func (m *memStore) SavePrefs(p store.Prefs) error {
	m.prefs = p
	return nil
}

func (m *memStore) Export(ctx context.Context) ([]byte, error) {
	return json.Marshal(m.records)
}

func (m *memStore) Import(ctx context.Context, data []byte) error {
	return errors.New("not supported")
}

func copyDays(days []cycle.DayEntry) []cycle.DayEntry {
	return append([]cycle.DayEntry(nil), days...)
}

func fullCycle(t cycle.EntryType) []cycle.DayEntry {
	days := cycle.EmptyCycle()
	for i := range days {
		days[i].Type = t
	}
	return days
}
