// Package cache provides read-through memoization for store reads whose
// staleness window is acceptable.
//
// A Memo wraps one read function. Entries are keyed by the call arguments
// and stamped with the time they were populated. Expiry is checked lazily
// when an entry is read; there is no background eviction. An expired entry
// is treated as absent and the next reader reloads it synchronously.
//
// Failed loads are never stored, so the next call retries the underlying
// read. Invalidate and Purge take effect before they return: a load that was
// already in flight when the entry was invalidated is returned to its callers
// but not stored.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadFunc is the underlying read a Memo wraps.
type LoadFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

type Memo[K comparable, V any] struct {
	name  string
	ttl   time.Duration
	load  LoadFunc[K, V]
	clock Clock

	mu         sync.Mutex
	entries    map[K]entry[V]
	generation uint64
	hits       uint64
	misses     uint64

	group singleflight.Group
}

// NewMemo wraps load with a validity window of ttl. A ttl of zero or less
// disables caching: every Get calls load. A nil clock uses SystemClock.
func NewMemo[K comparable, V any](name string, ttl time.Duration, clock Clock, load LoadFunc[K, V]) *Memo[K, V] {
	if clock == nil {
		clock = SystemClock
	}
	return &Memo[K, V]{
		name:    name,
		ttl:     ttl,
		load:    load,
		clock:   clock,
		entries: make(map[K]entry[V]),
	}
}

// Get returns the cached value for key while it is inside its validity
// window, otherwise it loads, stores and returns a fresh value.
func (m *Memo[K, V]) Get(ctx context.Context, key K) (V, error) {
	m.mu.Lock()
	if e, ok := m.entries[key]; ok && m.fresh(e, m.clock.Now()) {
		m.hits++
		m.mu.Unlock()
		return e.value, nil
	}
	m.misses++
	gen := m.generation
	m.mu.Unlock()

	// Concurrent misses for the same key and generation share one load
	flightKey := fmt.Sprintf("%d/%#v", gen, key)
	v, err, _ := m.group.Do(flightKey, func() (any, error) {
		value, err := m.load(ctx, key)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		if m.ttl > 0 && m.generation == gen {
			m.entries[key] = entry[V]{value: value, storedAt: m.clock.Now()}
		}
		m.mu.Unlock()

		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	value, _ := v.(V)
	return value, nil
}

func (m *Memo[K, V]) fresh(e entry[V], now time.Time) bool {
	return now.Sub(e.storedAt) < m.ttl
}

// Invalidate drops the entry for key.
func (m *Memo[K, V]) Invalidate(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	delete(m.entries, key)
}

// Purge drops every entry.
func (m *Memo[K, V]) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.entries = make(map[K]entry[V])
}

// Stats describes a memo for the cache status endpoint.
type Stats struct {
	Name    string        `json:"name"`
	TTL     time.Duration `json:"ttl_ns"`
	Entries int           `json:"entries"`
	Hits    uint64        `json:"hits"`
	Misses  uint64        `json:"misses"`
}

// Stats counts only entries that are still inside their validity window.
func (m *Memo[K, V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	live := 0
	for _, e := range m.entries {
		if m.fresh(e, now) {
			live++
		}
	}

	return Stats{
		Name:    m.name,
		TTL:     m.ttl,
		Entries: live,
		Hits:    m.hits,
		Misses:  m.misses,
	}
}
