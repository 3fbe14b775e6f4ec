package memo

// Hooks report memo-level events. Implementations MUST be cheap and non-blocking.
type Hooks interface {
	// Local LRU hit / miss.
	Hit(mode Mode)
	Miss(mode Mode)

	// Input too long to memoize; the result was computed and not stored.
	Skipped(mode Mode, keyLen int)

	// A local miss was served from the shared provider.
	SharedHit(mode Mode)

	// A shared provider call failed. op ∈ {"get", "set", "del", "encode"}
	SharedError(op string, err error)

	// A shared entry was deleted on read.
	// reason ∈ {"corrupt", "mismatch", "value_decode"}
	SelfHeal(storageKey, reason string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit(Mode)                  {}
func (NopHooks) Miss(Mode)                 {}
func (NopHooks) Skipped(Mode, int)         {}
func (NopHooks) SharedHit(Mode)            {}
func (NopHooks) SharedError(string, error) {}
func (NopHooks) SelfHeal(string, string)   {}
