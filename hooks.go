package genlru

// Hooks lightweight callbacks for high-signal store events.
// Implementations MUST be cheap and non-blocking and MUST NOT call back
// into the LRU that fired them. The store calls them on hot paths.
type Hooks interface {
	// The previous generation was dropped. evicted is the number of
	// entries it held (0 when previous was empty).
	Rollover(evicted int)

	// A stale entry was removed on touch. notified reports whether
	// OnEviction saw it (Get/Has/Resize do, Peek and iteration don't).
	Expired(notified bool)

	// Resize finished. evicted counts the oldest live entries dropped
	// to fit the new capacity.
	Resized(from, to, evicted int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Rollover(int)          {}
func (NopHooks) Expired(bool)          {}
func (NopHooks) Resized(int, int, int) {}
