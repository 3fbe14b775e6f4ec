package genlru

import (
	"time"
)

// Options tune the behavior of an LRU.
// Only Capacity is required; others have sensible defaults.
type Options[K comparable, V any] struct {
	// Required
	Capacity int // inserts into the recent generation before a rollover; must be > 0

	DefaultTTL time.Duration // used by Set; 0 => entries never expire, < 0 is rejected

	// OnEviction sees entries that leave involuntarily: rollover, resize
	// shrink, and expiry detected by Get, Has or Resize. Delete and Clear
	// don't report. It must not call back into the LRU.
	OnEviction func(key K, value V)

	Hooks  Hooks            // if nil, NopHooks is used
	Logger Logger           // if nil, NopLogger is used
	Clock  func() time.Time // if nil, time.Now is used
}

// New validates opts and returns an empty LRU.
// It fails with a *ConfigError wrapping ErrInvalidCapacity or ErrInvalidTTL.
func New[K comparable, V any](opts Options[K, V]) (*LRU[K, V], error) {
	return newLRU(opts)
}
