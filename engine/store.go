package engine

import "github.com/lixenwraith/stress-bomb/core"

// Store is a dense container for one component category
// Items live in a contiguous slice; removal swap-removes so iterating back-to-front
// with RemoveAt never skips or revisits an entry
type Store[T any] struct {
	items    []T
	entities []core.Entity
	index    map[core.Entity]int
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items:    make([]T, 0, 64),
		entities: make([]core.Entity, 0, 64),
		index:    make(map[core.Entity]int),
	}
}

// Set inserts or replaces the component of an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.items[i] = val
		return
	}
	s.index[e] = len(s.items)
	s.items = append(s.items, val)
	s.entities = append(s.entities, e)
}

// Get returns a pointer into the dense slice, valid until the next Set or removal
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	i, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return &s.items[i], true
}

func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// At returns the entity and component pointer at dense index i
func (s *Store[T]) At(i int) (core.Entity, *T) {
	return s.entities[i], &s.items[i]
}

// Len returns number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Remove deletes the component of e, reporting whether it existed
func (s *Store[T]) Remove(e core.Entity) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	s.RemoveAt(i)
	return true
}

// RemoveAt swap-removes the entry at dense index i
func (s *Store[T]) RemoveAt(i int) {
	last := len(s.items) - 1
	removed := s.entities[i]

	if i != last {
		s.items[i] = s.items[last]
		s.entities[i] = s.entities[last]
		s.index[s.entities[i]] = i
	}

	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	s.entities = s.entities[:last]
	delete(s.index, removed)
}

// Entities returns a copy of the entity list in dense order
func (s *Store[T]) Entities() []core.Entity {
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	s.entities = s.entities[:0]
	clear(s.index)
}
