package catalog

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/citytour/cities"
)

// Memory is an in-process Store.
type Memory struct {
	mu   sync.RWMutex
	sets map[string]cities.Set
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sets: make(map[string]cities.Set)}
}

// Put stores a copy of s.
func (m *Memory) Put(_ context.Context, s cities.Set) error {
	if err := checkSet(s); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[s.Name] = cloneSet(s)

	return nil
}

// Get returns a copy of the named set.
func (m *Memory) Get(_ context.Context, name string) (cities.Set, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sets[name]
	if !ok {
		return cities.Set{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	return cloneSet(s), nil
}

// Delete removes the named set.
func (m *Memory) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sets[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(m.sets, name)

	return nil
}

// List returns the stored names in ascending order.
func (m *Memory) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.sets)), nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
