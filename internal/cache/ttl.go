// Package cache provides a bounded, time-expiring in-memory store used to
// hold login sessions between requests.
package cache

import (
	"container/heap"
	"sync"
	"time"
)

const DefaultCapacity = 1000

// Entry is a live key/value pair together with the moment it stops being valid.
type Entry[K comparable, V any] struct {
	Key       K         `json:"key"`
	Value     V         `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

type item[K comparable, V any] struct {
	entry Entry[K, V]
	index int
}

// expiryHeap is a min-heap over expiry times; the root is always the entry
// that runs out first.
type expiryHeap[K comparable, V any] []*item[K, V]

func (h expiryHeap[K, V]) Len() int { return len(h) }

func (h expiryHeap[K, V]) Less(i, j int) bool {
	return h[i].entry.ExpiresAt.Before(h[j].entry.ExpiresAt)
}

func (h expiryHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *expiryHeap[K, V]) Push(x any) {
	it := x.(*item[K, V])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *expiryHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// TTL maps keys to values that expire a fixed duration after their last Put.
// When full, inserting a new key evicts the entry closest to expiry.
// It is safe for concurrent use.
type TTL[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*item[K, V]
	order    expiryHeap[K, V]
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

func New[K comparable, V any](capacity int, ttl time.Duration, opts ...Option) *TTL[K, V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &TTL[K, V]{
		items:    make(map[K]*item[K, V], capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      o.now,
	}
}

// Capacity is the most entries the cache holds at once.
func (c *TTL[K, V]) Capacity() int { return c.capacity }

// Lifetime is how long an entry stays valid after its last Put.
func (c *TTL[K, V]) Lifetime() time.Duration { return c.ttl }

// Put stores value under key, resetting its expiry to now+ttl.
func (c *TTL[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.purgeExpired(now)

	expiresAt := now.Add(c.ttl)
	if it, ok := c.items[key]; ok {
		it.entry.Value = value
		it.entry.ExpiresAt = expiresAt
		heap.Fix(&c.order, it.index)
		return
	}

	if len(c.items) >= c.capacity {
		victim := heap.Pop(&c.order).(*item[K, V])
		delete(c.items, victim.entry.Key)
	}

	it := &item[K, V]{entry: Entry[K, V]{Key: key, Value: value, ExpiresAt: expiresAt}}
	heap.Push(&c.order, it)
	c.items[key] = it
}

// Get returns the value for key if it exists and has not expired.
// An expired entry is dropped on the spot.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	it, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if !c.now().Before(it.entry.ExpiresAt) {
		c.remove(it)
		return zero, false
	}
	return it.entry.Value, true
}

// Delete removes key if present.
func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[key]; ok {
		c.remove(it)
	}
}

// Len reports the number of live entries.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeExpired(c.now())
	return len(c.items)
}

// Items returns a snapshot of the live entries, soonest to expire first.
func (c *TTL[K, V]) Items() []Entry[K, V] {
	c.mu.Lock()
	snapshot := make(expiryHeap[K, V], 0, len(c.order))
	c.purgeExpired(c.now())
	for _, it := range c.order {
		snapshot = append(snapshot, &item[K, V]{entry: it.entry})
	}
	c.mu.Unlock()

	entries := make([]Entry[K, V], 0, len(snapshot))
	heap.Init(&snapshot)
	for snapshot.Len() > 0 {
		entries = append(entries, heap.Pop(&snapshot).(*item[K, V]).entry)
	}
	return entries
}

func (c *TTL[K, V]) purgeExpired(now time.Time) {
	for c.order.Len() > 0 && !now.Before(c.order[0].entry.ExpiresAt) {
		it := heap.Pop(&c.order).(*item[K, V])
		delete(c.items, it.entry.Key)
	}
}

func (c *TTL[K, V]) remove(it *item[K, V]) {
	heap.Remove(&c.order, it.index)
	delete(c.items, it.entry.Key)
}
