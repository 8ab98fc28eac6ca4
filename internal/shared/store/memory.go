package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryMap is an in-memory implementation of Map with the same ordering and
// atomicity semantics as BoltMap. It is the test double for components that
// take a Map dependency; nothing survives a restart.
type MemoryMap[V any] struct {
	mu     sync.RWMutex
	values map[string]V
}

// NewMemoryMap creates an empty in-memory map.
func NewMemoryMap[V any]() *MemoryMap[V] {
	return &MemoryMap[V]{values: make(map[string]V)}
}

// Insert stores value under key and returns the previous value, if any.
func (m *MemoryMap[V]) Insert(ctx context.Context, key string, value V) (prev V, replaced bool, err error) {
	if err = ctx.Err(); err != nil {
		return prev, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, replaced = m.values[key]
	m.values[key] = value
	return prev, replaced, nil
}

// Get returns the value stored under key, if any.
func (m *MemoryMap[V]) Get(ctx context.Context, key string) (value V, ok bool, err error) {
	if err = ctx.Err(); err != nil {
		return value, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok = m.values[key]
	return value, ok, nil
}

// Remove deletes the value stored under key and returns it, if any.
func (m *MemoryMap[V]) Remove(ctx context.Context, key string) (removed V, ok bool, err error) {
	if err = ctx.Err(); err != nil {
		return removed, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	removed, ok = m.values[key]
	if ok {
		delete(m.values, key)
	}
	return removed, ok, nil
}

// Values returns a snapshot of all stored values in key order.
func (m *MemoryMap[V]) Values(ctx context.Context) ([]V, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make([]V, 0, len(keys))
	for _, key := range keys {
		values = append(values, m.values[key])
	}
	return values, nil
}

var _ Map[string] = (*MemoryMap[string])(nil)
