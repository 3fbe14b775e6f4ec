// Package genlru implements an approximate, capacity-bounded LRU cache with
// optional per-entry TTL, built from two generations of insertion-ordered maps
// instead of a recency linked list. Set/Get/Has are amortized O(1).
//
// Generations:
//
//	recent   - entries written (or promoted) since the last rollover
//	previous - the generation before that
//
// Every insert of a new key into recent counts toward Capacity. When the count
// reaches Capacity the cache rolls over: previous is handed to OnEviction and
// dropped, recent becomes previous and a fresh recent is started. A Get that
// hits previous promotes the entry into recent through the same insert path,
// so hot keys survive rollovers and cold keys age out.
//
// The price is approximate recency and a transient overshoot: between
// rollovers up to 2*Capacity-1 distinct keys may be live.
//
// Expiry is lazy. Reads compare the stored deadline against Options.Clock and
// drop stale entries on touch; there is no background sweeper.
//
// An LRU is not safe for concurrent mutation. Callers serialize access
// (see package memo for a locked consumer).
//
//	c, _ := genlru.New[string, int](genlru.Options[string, int]{
//	    Capacity:   1000,
//	    DefaultTTL: time.Minute,
//	    OnEviction: func(k string, v int) { log.Printf("evicted %s", k) },
//	})
//	c.Set("a", 1)
//	v, ok := c.Get("a")
package genlru
