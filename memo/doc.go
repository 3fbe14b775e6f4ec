// Package memo memoizes string key transformations on top of a genlru.LRU.
//
// Results are cached under (mode, key), so e.g. the camel and pascal forms of
// the same input never collide. Inputs of MaxKeyLen bytes or more are
// transformed but never stored: pathological keys must not crowd out the
// short ones the cache exists for.
//
// An optional shared provider (Redis, ristretto, bigcache) sits behind the
// local LRU. Local misses consult it before computing, and computed results
// are written back. Concurrent misses for the same key share one round-trip.
// Shared-tier failures are logged and reported to Hooks but never fail a
// transformation.
//
// A Memo is safe for concurrent use; it serializes access to its LRU.
package memo
