package memory

import (
	"slices"

	"forwarding/internal/core/domain/model/kernel"
)

type versioned[T any] struct {
	value   T
	version uint64
}

// table is the committed state of one aggregate type. version changes whenever a row is
// inserted or deleted, so scans can detect phantoms.
type table[T any] struct {
	rows    map[kernel.UUID]versioned[T]
	seq     []kernel.UUID
	version uint64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[kernel.UUID]versioned[T])}
}

func (t *table[T]) rowVersion(id kernel.UUID) uint64 {
	if row, ok := t.rows[id]; ok {
		return row.version
	}
	return 0
}

// txTable is one transaction's view of a table: a read set with observed versions and a
// private write set applied only on commit. A nil entry in writes is a deletion.
type txTable[T any] struct {
	base  *table[T]
	clone func(T) T

	reads       map[kernel.UUID]uint64
	scanned     bool
	scanVersion uint64
	writes      map[kernel.UUID]*T
	inserted    []kernel.UUID
}

func newTxTable[T any](base *table[T], clone func(T) T) *txTable[T] {
	return &txTable[T]{
		base:   base,
		clone:  clone,
		reads:  make(map[kernel.UUID]uint64),
		writes: make(map[kernel.UUID]*T),
	}
}

func (t *txTable[T]) observe(id kernel.UUID) {
	if _, ok := t.reads[id]; !ok {
		t.reads[id] = t.base.rowVersion(id)
	}
}

func (t *txTable[T]) get(id kernel.UUID) (T, bool) {
	if w, ok := t.writes[id]; ok {
		if w == nil {
			var zero T
			return zero, false
		}
		return t.clone(*w), true
	}

	t.observe(id)
	row, ok := t.base.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row.value), true
}

func (t *txTable[T]) exists(id kernel.UUID) bool {
	_, ok := t.get(id)
	return ok
}

func (t *txTable[T]) put(id kernel.UUID, v T) {
	t.observe(id)
	if _, committed := t.base.rows[id]; !committed && !slices.ContainsFunc(t.inserted, id.IsEqual) {
		t.inserted = append(t.inserted, id)
	}
	c := t.clone(v)
	t.writes[id] = &c
}

func (t *txTable[T]) del(id kernel.UUID) {
	t.observe(id)
	t.writes[id] = nil
}

// all returns the visible rows in insertion order.
func (t *txTable[T]) all() []T {
	if !t.scanned {
		t.scanned = true
		t.scanVersion = t.base.version
	}

	out := make([]T, 0, len(t.base.seq)+len(t.inserted))
	for _, id := range t.base.seq {
		if v, ok := t.get(id); ok {
			out = append(out, v)
		}
	}
	for _, id := range t.inserted {
		if w := t.writes[id]; w != nil {
			out = append(out, t.clone(*w))
		}
	}
	return out
}

func (t *txTable[T]) valid() bool {
	for id, seen := range t.reads {
		if t.base.rowVersion(id) != seen {
			return false
		}
	}
	return !t.scanned || t.base.version == t.scanVersion
}

func (t *txTable[T]) apply(version uint64) {
	for _, id := range t.inserted {
		if w := t.writes[id]; w != nil {
			t.base.seq = append(t.base.seq, id)
			t.base.version = version
		}
	}

	for id, w := range t.writes {
		if w == nil {
			if _, ok := t.base.rows[id]; ok {
				delete(t.base.rows, id)
				t.base.seq = slices.DeleteFunc(t.base.seq, id.IsEqual)
				t.base.version = version
			}
			continue
		}
		t.base.rows[id] = versioned[T]{value: *w, version: version}
	}
}
