// Package store provides a generic named registry for game assets.
//
// A Store maps human-friendly names to items: fonts, textures, sounds,
// or anything else a game wants to look up by name instead of passing
// around by hand.
//
//	sounds := store.New[audio.Sound]().
//	    With("jump", jump).
//	    With("death", death)
//
//	player.Play(sounds.MustGet("jump"))
package store

import "sync"

// Store is a named registry of items. The zero value is not usable;
// create one with [New].
//
// Store is safe for concurrent use.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

// With stores an item and returns the store, for builder-style setup.
func (s *Store[T]) With(name string, item T) *Store[T] {
	s.Add(name, item)
	return s
}

// Add stores an item under a name, replacing any previous item.
func (s *Store[T]) Add(name string, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[name] = item
}

// Get returns the named item and whether it exists.
func (s *Store[T]) Get(name string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[name]
	return item, ok
}

// MustGet returns the named item, panicking if it does not exist.
// Use only for assets that are loaded unconditionally at startup.
func (s *Store[T]) MustGet(name string) T {
	item, ok := s.Get(name)
	if !ok {
		panic("store: no item named " + name)
	}
	return item
}

// Remove deletes an item, returning it and whether it existed.
func (s *Store[T]) Remove(name string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[name]
	if ok {
		delete(s.items, name)
	}
	return item, ok
}

// Len returns the number of stored items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Names returns the names of all stored items, in no particular order.
func (s *Store[T]) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}
	return names
}
