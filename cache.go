package genlru

import (
	"time"

	om "github.com/wk8/go-ordered-map/v2"
)

type entry[V any] struct {
	value  V
	expiry time.Time // zero => never expires
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiry.IsZero() && !e.expiry.After(now)
}

type generation[K comparable, V any] struct {
	*om.OrderedMap[K, entry[V]]
}

func newGeneration[K comparable, V any]() generation[K, V] {
	return generation[K, V]{om.New[K, entry[V]]()}
}

// LRU is an approximate LRU cache made of two generations.
// The zero value is not usable; construct with New.
type LRU[K comparable, V any] struct {
	recent   generation[K, V]
	previous generation[K, V]

	capacity   int
	defaultTTL time.Duration
	hint       int // inserts into recent since the last rollover

	onEviction func(K, V)
	hooks      Hooks
	log        Logger
	now        func() time.Time
}

func newLRU[K comparable, V any](opts Options[K, V]) (*LRU[K, V], error) {
	if err := validCapacity("capacity", opts.Capacity); err != nil {
		return nil, err
	}
	if opts.DefaultTTL < 0 {
		return nil, &ConfigError{Field: "default ttl", Value: opts.DefaultTTL, Err: ErrInvalidTTL}
	}

	c := &LRU[K, V]{
		recent:     newGeneration[K, V](),
		previous:   newGeneration[K, V](),
		capacity:   opts.Capacity,
		defaultTTL: opts.DefaultTTL,
		onEviction: opts.OnEviction,
	}

	// defaults
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.now = systemClock
	if opts.Clock != nil {
		c.now = opts.Clock
	}
	return c, nil
}

// Cap returns the current capacity.
func (c *LRU[K, V]) Cap() int { return c.capacity }

// Set stores value under key using Options.DefaultTTL.
func (c *LRU[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key. ttl <= 0 means the entry never expires.
// Overwriting a key of the recent generation happens in place and never
// triggers a rollover.
func (c *LRU[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	e := entry[V]{value: value}
	if ttl > 0 {
		e.expiry = c.now().Add(ttl)
	}
	if _, ok := c.recent.Get(key); ok {
		c.recent.Set(key, e)
		return
	}
	c.insert(key, e)
}

// Get returns the value for key. A hit in the previous generation is
// promoted into recent, which counts as an insert and may roll over.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	var zero V
	if e, ok := c.recent.Get(key); ok {
		if c.expireIfStale(key, e, c.now(), true) {
			return zero, false
		}
		return e.value, true
	}
	if e, ok := c.previous.Get(key); ok {
		if c.expireIfStale(key, e, c.now(), true) {
			return zero, false
		}
		c.previous.Delete(key)
		c.insert(key, e)
		return e.value, true
	}
	return zero, false
}

// Peek is Get without promotion. Stale entries are dropped without
// notifying OnEviction.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	var zero V
	e, ok := c.lookup(key)
	if !ok || c.expireIfStale(key, e, c.now(), false) {
		return zero, false
	}
	return e.value, true
}

// Has reports whether key is present and live. It never promotes.
func (c *LRU[K, V]) Has(key K) bool {
	e, ok := c.lookup(key)
	return ok && !c.expireIfStale(key, e, c.now(), true)
}

// Delete removes key from both generations and reports whether anything
// was removed. OnEviction is not called.
func (c *LRU[K, V]) Delete(key K) bool {
	return c.remove(key)
}

// Clear drops every entry without calling OnEviction.
func (c *LRU[K, V]) Clear() {
	c.recent = newGeneration[K, V]()
	c.previous = newGeneration[K, V]()
	c.hint = 0
}

// Resize changes the capacity. Live entries are kept oldest-first; when
// there are at least n of them the oldest len-n are evicted and the rest
// become the previous generation. On error the cache is left untouched.
func (c *LRU[K, V]) Resize(n int) error {
	if err := validCapacity("capacity", n); err != nil {
		return err
	}

	from := c.capacity
	live := c.collect()
	excess := len(live) - n
	if excess < 0 {
		c.recent = fill[K, V](live)
		c.previous = newGeneration[K, V]()
		c.hint = len(live)
		excess = 0
	} else {
		for _, it := range live[:excess] {
			c.notify(it.key, it.e.value)
		}
		c.previous = fill[K, V](live[excess:])
		c.recent = newGeneration[K, V]()
		c.hint = 0
	}
	c.capacity = n

	c.hooks.Resized(from, n, excess)
	c.log.Debug("resized", Fields{"from": from, "to": n, "evicted": excess})
	return nil
}

// Len reports the number of live entries, capped at Cap. It is a pure
// observation: stale entries are skipped but not removed.
func (c *LRU[K, V]) Len() int {
	now := c.now()
	n := 0
	for p := c.previous.Oldest(); p != nil; p = p.Next() {
		if p.Value.expired(now) {
			continue
		}
		if c.hint > 0 {
			if _, shadowed := c.recent.Get(p.Key); shadowed {
				continue
			}
		}
		n++
	}
	if c.hint == 0 {
		return n
	}
	return min(c.hint+n, c.capacity)
}

func (c *LRU[K, V]) lookup(key K) (entry[V], bool) {
	if e, ok := c.recent.Get(key); ok {
		return e, true
	}
	return c.previous.Get(key)
}

func (c *LRU[K, V]) insert(key K, e entry[V]) {
	c.recent.Set(key, e)
	c.hint++
	if c.hint >= c.capacity {
		c.rollover()
	}
}

func (c *LRU[K, V]) rollover() {
	c.hint = 0
	dropped := c.previous.Len()
	if c.onEviction != nil {
		for p := c.previous.Oldest(); p != nil; p = p.Next() {
			c.onEviction(p.Key, p.Value.value)
		}
	}
	c.previous = c.recent
	c.recent = newGeneration[K, V]()

	c.hooks.Rollover(dropped)
	if dropped > 0 {
		c.log.Debug("generation rollover", Fields{"evicted": dropped, "capacity": c.capacity})
	}
}

// expireIfStale removes key when e is past its deadline and reports whether
// it did. notify selects whether OnEviction sees the removal.
func (c *LRU[K, V]) expireIfStale(key K, e entry[V], now time.Time, notify bool) bool {
	if !e.expired(now) {
		return false
	}
	c.remove(key)
	if notify {
		c.notify(key, e.value)
	}
	c.hooks.Expired(notify)
	return true
}

func (c *LRU[K, V]) remove(key K) bool {
	_, inRecent := c.recent.Delete(key)
	if inRecent {
		c.hint--
	}
	_, inPrevious := c.previous.Delete(key)
	return inRecent || inPrevious
}

func (c *LRU[K, V]) notify(key K, value V) {
	if c.onEviction != nil {
		c.onEviction(key, value)
	}
}

type item[K comparable, V any] struct {
	key K
	e   entry[V]
}

// collect returns the live entries oldest-first, expiring stale ones
// (with notification) along the way.
func (c *LRU[K, V]) collect() []item[K, V] {
	now := c.now()
	out := make([]item[K, V], 0, c.previous.Len()+c.recent.Len())
	for p := c.previous.Oldest(); p != nil; {
		next := p.Next()
		if _, shadowed := c.recent.Get(p.Key); !shadowed && !c.expireIfStale(p.Key, p.Value, now, true) {
			out = append(out, item[K, V]{key: p.Key, e: p.Value})
		}
		p = next
	}
	for p := c.recent.Oldest(); p != nil; {
		next := p.Next()
		if !c.expireIfStale(p.Key, p.Value, now, true) {
			out = append(out, item[K, V]{key: p.Key, e: p.Value})
		}
		p = next
	}
	return out
}

func fill[K comparable, V any](items []item[K, V]) generation[K, V] {
	g := newGeneration[K, V]()
	for _, it := range items {
		g.Set(it.key, it.e)
	}
	return g
}
