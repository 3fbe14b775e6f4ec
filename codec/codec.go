// Package codec turns memoized values into bytes for a shared provider.
//
// The memo package stores strings, so every codec here can carry a
// Codec[string]; the generic ones also serve callers that put richer values
// in a provider next to the memo entries.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
