package store

import (
	"football-client/internal/domain"
)

// MemoryStore keeps the last resolved collection of one entity kind in memory.
// It is not safe for concurrent use.
type MemoryStore[T any] struct {
	collection domain.Collection[T]
	loaded     bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{}
}

// Collection returns the stored collection and whether it holds any records.
func (s *MemoryStore[T]) Collection() (domain.Collection[T], bool) {
	if !s.loaded || s.collection.Empty() {
		return domain.Collection[T]{}, false
	}
	return s.collection, true
}

// List returns a copy of the stored records.
func (s *MemoryStore[T]) List() []T {
	return s.collection.Records()
}

// Set replaces the stored collection wholesale. Empty collections are ignored.
func (s *MemoryStore[T]) Set(c domain.Collection[T]) {
	if c.Empty() {
		return
	}
	c.Response = c.Records()
	s.collection = c
	s.loaded = true
}

// Loaded reports whether a non-empty collection has ever been stored.
func (s *MemoryStore[T]) Loaded() bool {
	return s.loaded
}
