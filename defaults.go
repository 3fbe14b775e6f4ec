package genlru

import "time"

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// Coalesce is exported for sibling packages that resolve Options the same way.
func Coalesce[T comparable](v, def T) T { return coalesce(v, def) }

func systemClock() time.Time { return time.Now() }
