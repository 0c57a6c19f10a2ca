package entity

import "sort"

// Store holds the active scene's entity population.
// It is owned by a single thread; callers must not share it across goroutines.
type Store struct {
	entities []Entity
	index    map[ID]int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{index: make(map[ID]int)}
}

// Replace discards the current population and installs a new one.
// Later duplicates of an ID shadow earlier ones in lookups.
func (s *Store) Replace(population []Entity) {
	s.entities = population
	s.reindex()
}

func (s *Store) reindex() {
	s.index = make(map[ID]int, len(s.entities))
	for i := range s.entities {
		s.index[s.entities[i].ID] = i
	}
}

// Get returns the entity with the given ID, or nil if it is not in the
// current population.
func (s *Store) Get(id ID) *Entity {
	i, ok := s.index[id]
	if !ok {
		return nil
	}
	return &s.entities[i]
}

// FirstOfKind returns the first entity of kind k, or nil.
func (s *Store) FirstOfKind(k Kind) *Entity {
	for i := range s.entities {
		if s.entities[i].Kind() == k {
			return &s.entities[i]
		}
	}
	return nil
}

// Each calls fn for every entity in storage order.
func (s *Store) Each(fn func(e *Entity)) {
	for i := range s.entities {
		fn(&s.entities[i])
	}
}

// SortByDepth orders entities by ascending world y so nearer entities are
// drawn last. The sort is stable so equal-y entities keep generation order.
func (s *Store) SortByDepth() {
	sort.SliceStable(s.entities, func(i, j int) bool {
		return s.entities[i].Y < s.entities[j].Y
	})
	s.reindex()
}

// Len returns the population size.
func (s *Store) Len() int {
	return len(s.entities)
}

// Snapshot returns a copy of the population. Bodies are shared with the store.
func (s *Store) Snapshot() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}
