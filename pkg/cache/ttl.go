// Package cache holds the bounded caches used in front of TMDB.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Clock is injected so expiry can be driven from tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// TTL is a size-bounded LRU whose entries also expire after a fixed duration.
// Safe for concurrent use.
type TTL[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	clock    Clock
	order    *list.List
	items    map[K]*list.Element
}

// NewTTL returns a cache holding at most capacity entries, each living for ttl.
// A nil clock means the wall clock.
func NewTTL[K comparable, V any](capacity int, ttl time.Duration, clock Clock) *TTL[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	if clock == nil {
		clock = SystemClock
	}
	return &TTL[K, V]{
		capacity: capacity,
		ttl:      ttl,
		clock:    clock,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		return zero, false
	}

	e := el.Value.(*entry[K, V])
	if !c.clock.Now().Before(e.expiresAt) {
		c.removeElement(el)
		return zero, false
	}

	c.order.MoveToFront(el)
	return e.value, true
}

func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.clock.Now().Add(c.ttl)

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[K, V])
		e.value = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&entry[K, V]{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = el

	for c.order.Len() > c.capacity {
		c.removeElement(c.order.Back())
	}
}

func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// Len counts stored entries, expired ones included until they are touched.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *TTL[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[K]*list.Element, c.capacity)
}

func (c *TTL[K, V]) removeElement(el *list.Element) {
	e := el.Value.(*entry[K, V])
	delete(c.items, e.key)
	c.order.Remove(el)
}
