// Package registry provides the in-process authoritative room store. A
// Registry owns the code→game mapping and is injected into usecases instead
// of living as ambient package state.
package registry

import "sync"

type Registry[T any] struct {
	mu    sync.RWMutex
	rooms map[string]T
}

func New[T any]() *Registry[T] {
	return &Registry[T]{rooms: make(map[string]T)}
}

func (r *Registry[T]) Load(code string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.rooms[code]
	return g, ok
}

// Store swaps the record for code in. Callers persist first and swap after,
// so a failed write never leaves the registry ahead of the durable store.
func (r *Registry[T]) Store(code string, game T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[code] = game
}

// LoadOrStore stores game only if code is absent, returning the record that
// ended up registered. Closes the race between two cold loads of one room.
func (r *Registry[T]) LoadOrStore(code string, game T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.rooms[code]; ok {
		return existing
	}
	r.rooms[code] = game
	return game
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
