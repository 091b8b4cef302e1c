// Package memstore holds records in process memory behind an id-assigning store.
package memstore

import "sync"

// Store owns an ordered collection of records and the counter used to assign
// their identifiers. Ids start at 1, grow by one per Create and are never reused.
type Store[T any] struct {
	mu      sync.RWMutex
	records []T
	nextID  int64
	idOf    func(T) int64
	setID   func(*T, int64)
}

// New creates a store. Seed records are created in order, so they receive ids
// 1..len(seed) regardless of any id they carry.
func New[T any](idOf func(T) int64, setID func(*T, int64), seed ...T) *Store[T] {
	s := &Store[T]{
		records: make([]T, 0, len(seed)),
		nextID:  1,
		idOf:    idOf,
		setID:   setID,
	}
	for _, rec := range seed {
		s.Create(rec)
	}
	return s
}

// List returns every record in insertion order. The slice is a copy.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the first record with the given id.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if s.idOf(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Create assigns the next id to rec, overwriting whatever id it had, and
// appends it.
func (s *Store[T]) Create(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setID(&rec, s.nextID)
	s.nextID++
	s.records = append(s.records, rec)
	return rec
}

// Len reports how many records are stored.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
