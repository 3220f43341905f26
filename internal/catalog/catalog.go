// Package catalog holds the fixed reference dataset: the model records and the
// data-cleaning tips. The store is built once and never mutated; every accessor
// hands out copies.
package catalog

import "mlguide/internal/domain"

// Default is the store used by the application
var Default = New()

// Store is an immutable, ordered catalog
type Store struct {
	models []domain.ModelRecord
	tips   []domain.TipRecord
	index  map[string]int // key -> position in models
}

// New builds the catalog in its declared order
func New() *Store {
	s := &Store{
		models: models(),
		tips:   tips(),
	}
	s.index = make(map[string]int, len(s.models))
	for i, m := range s.models {
		s.index[m.Key] = i
	}
	return s
}

// Models returns all model records in declared order
func (s *Store) Models() []domain.ModelRecord {
	out := make([]domain.ModelRecord, len(s.models))
	for i, m := range s.models {
		out[i] = m.Clone()
	}
	return out
}

// Tips returns all cleaning tips in declared order
func (s *Store) Tips() []domain.TipRecord {
	out := make([]domain.TipRecord, len(s.tips))
	copy(out, s.tips)
	return out
}

// Model looks up a record by its identity key
func (s *Store) Model(key string) (domain.ModelRecord, bool) {
	i, ok := s.index[key]
	if !ok {
		return domain.ModelRecord{}, false
	}
	return s.models[i].Clone(), true
}

// Len returns the number of model records
func (s *Store) Len() int {
	return len(s.models)
}
