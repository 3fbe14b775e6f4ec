package genlru

import "iter"

// Iterators yield live entries and drop stale ones they pass over without
// notifying OnEviction. The LRU must not be mutated from inside the loop body.

// All iterates oldest to newest. It is the same as Ascending.
func (c *LRU[K, V]) All() iter.Seq2[K, V] { return c.Ascending() }

// Ascending yields the unshadowed previous generation, then recent,
// each in insertion order.
func (c *LRU[K, V]) Ascending() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		now := c.now()
		for p := c.previous.Oldest(); p != nil; {
			next := p.Next()
			if _, shadowed := c.recent.Get(p.Key); !shadowed && !c.expireIfStale(p.Key, p.Value, now, false) {
				if !yield(p.Key, p.Value.value) {
					return
				}
			}
			p = next
		}
		for p := c.recent.Oldest(); p != nil; {
			next := p.Next()
			if !c.expireIfStale(p.Key, p.Value, now, false) {
				if !yield(p.Key, p.Value.value) {
					return
				}
			}
			p = next
		}
	}
}

// Descending yields recent newest-first, then the unshadowed previous
// generation newest-first.
func (c *LRU[K, V]) Descending() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		now := c.now()
		for p := c.recent.Newest(); p != nil; {
			prev := p.Prev()
			if !c.expireIfStale(p.Key, p.Value, now, false) {
				if !yield(p.Key, p.Value.value) {
					return
				}
			}
			p = prev
		}
		for p := c.previous.Newest(); p != nil; {
			prev := p.Prev()
			if _, shadowed := c.recent.Get(p.Key); !shadowed && !c.expireIfStale(p.Key, p.Value, now, false) {
				if !yield(p.Key, p.Value.value) {
					return
				}
			}
			p = prev
		}
	}
}

// Keys yields keys oldest to newest.
func (c *LRU[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range c.Ascending() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields values oldest to newest.
func (c *LRU[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range c.Ascending() {
			if !yield(v) {
				return
			}
		}
	}
}
