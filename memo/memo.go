package memo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/unkn0wn-root/genlru"
	"github.com/unkn0wn-root/genlru/codec"
	"github.com/unkn0wn-root/genlru/internal/util"
	"github.com/unkn0wn-root/genlru/internal/wire"
	"github.com/unkn0wn-root/genlru/provider"
)

// Mode names a transformation. It is part of the cache key.
type Mode string

const (
	Camel  Mode = "camel"
	Pascal Mode = "pascal"
	Snake  Mode = "snake"
)

const (
	DefaultCapacity  = 100_000
	DefaultMaxKeyLen = 100
	DefaultNamespace = "genlru"
	DefaultSharedTTL = 10 * time.Minute
)

// Options configure a Memo. The zero value is usable.
type Options struct {
	Capacity  int           // local LRU capacity; 0 => DefaultCapacity
	MaxKeyLen int           // keys with len >= MaxKeyLen are not stored; 0 => DefaultMaxKeyLen
	TTL       time.Duration // local entry TTL; 0 => none

	// Shared tier (optional)
	Shared    provider.Provider
	Codec     codec.Codec[string] // nil => codec.String
	Namespace string              // "" => DefaultNamespace
	SharedTTL time.Duration       // 0 => DefaultSharedTTL

	// OnEviction is called under the Memo lock; it must not call back into the Memo.
	OnEviction func(mode Mode, key, value string)

	Logger     genlru.Logger // nil => genlru.NopLogger
	StoreHooks genlru.Hooks  // events of the local LRU; nil => genlru.NopHooks
	Hooks      Hooks         // nil => NopHooks
	Clock      func() time.Time
}

type Memo struct {
	mu  sync.Mutex
	lru *genlru.LRU[string, string]

	maxKeyLen int
	ns        string
	shared    provider.Provider
	codec     codec.Codec[string]
	sharedTTL time.Duration
	log       genlru.Logger
	hooks     Hooks
	sf        singleflight.Group
}

func New(opts Options) (*Memo, error) {
	if opts.MaxKeyLen < 0 {
		return nil, fmt.Errorf("memo: max key length must not be negative, got %d", opts.MaxKeyLen)
	}

	var onEviction func(string, string)
	if opts.OnEviction != nil {
		onEviction = func(k, v string) {
			mode, key, _ := util.SplitMemoKey(k)
			opts.OnEviction(Mode(mode), key, v)
		}
	}

	lru, err := genlru.New(genlru.Options[string, string]{
		Capacity:   genlru.Coalesce(opts.Capacity, DefaultCapacity),
		DefaultTTL: opts.TTL,
		OnEviction: onEviction,
		Hooks:      opts.StoreHooks,
		Logger:     opts.Logger,
		Clock:      opts.Clock,
	})
	if err != nil {
		return nil, fmt.Errorf("memo: %w", err)
	}

	m := &Memo{
		lru:       lru,
		maxKeyLen: genlru.Coalesce(opts.MaxKeyLen, DefaultMaxKeyLen),
		ns:        genlru.Coalesce(opts.Namespace, DefaultNamespace),
		shared:    opts.Shared,
		sharedTTL: genlru.Coalesce(opts.SharedTTL, DefaultSharedTTL),
		log:       genlru.Coalesce[genlru.Logger](opts.Logger, genlru.NopLogger{}),
		hooks:     genlru.Coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
	m.codec = opts.Codec
	if m.codec == nil {
		m.codec = codec.String{}
	}
	return m, nil
}

// Do returns fn(key), reusing a cached result for (mode, key) when there is one.
func (m *Memo) Do(ctx context.Context, mode Mode, key string, fn func(string) string) string {
	ck := util.MemoKey(string(mode), key)
	if v, ok := m.get(ck); ok {
		m.hooks.Hit(mode)
		return v
	}
	m.hooks.Miss(mode)

	if len(key) >= m.maxKeyLen {
		// prevent abuse: long keys are computed every time
		m.hooks.Skipped(mode, len(key))
		return fn(key)
	}

	if m.shared == nil {
		v := fn(key)
		m.set(ck, v)
		return v
	}

	v, _, _ := m.sf.Do(ck, func() (any, error) {
		if v, ok := m.loadShared(ctx, mode, key); ok {
			m.set(ck, v)
			return v, nil
		}
		v := fn(key)
		m.set(ck, v)
		m.storeShared(ctx, mode, key, v)
		return v, nil
	})
	return v.(string)
}

// Lookup returns the locally cached result without affecting recency.
func (m *Memo) Lookup(mode Mode, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Peek(util.MemoKey(string(mode), key))
}

// Forget drops (mode, key) locally and from the shared provider.
func (m *Memo) Forget(ctx context.Context, mode Mode, key string) error {
	m.mu.Lock()
	m.lru.Delete(util.MemoKey(string(mode), key))
	m.mu.Unlock()

	if m.shared == nil {
		return nil
	}
	sk := util.StorageKey(m.ns, string(mode), key)
	if err := m.shared.Del(ctx, sk); err != nil {
		m.hooks.SharedError("del", err)
		return fmt.Errorf("memo: forget %q: %w", sk, err)
	}
	return nil
}

// Len reports the number of live local entries (see genlru.LRU.Len).
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

// Resize changes the local capacity.
func (m *Memo) Resize(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.lru.Resize(n); err != nil {
		return fmt.Errorf("memo: %w", err)
	}
	return nil
}

// Clear drops every local entry. The shared provider is left alone.
func (m *Memo) Clear() {
	m.mu.Lock()
	m.lru.Clear()
	m.mu.Unlock()
}

// Close clears the local cache and closes the shared provider, if any.
func (m *Memo) Close(ctx context.Context) error {
	m.Clear()
	if m.shared != nil {
		return m.shared.Close(ctx)
	}
	return nil
}

func (m *Memo) get(ck string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Get(ck)
}

func (m *Memo) set(ck, v string) {
	m.mu.Lock()
	m.lru.Set(ck, v)
	m.mu.Unlock()
}

func (m *Memo) loadShared(ctx context.Context, mode Mode, key string) (string, bool) {
	sk := util.StorageKey(m.ns, string(mode), key)
	raw, ok, err := m.shared.Get(ctx, sk)
	if err != nil {
		m.log.Warn("shared get failed", genlru.Fields{"key": sk, "err": err})
		m.hooks.SharedError("get", err)
		return "", false
	}
	if !ok {
		return "", false
	}

	e, err := wire.DecodeEntry(raw)
	if err != nil {
		m.selfHeal(ctx, sk, "corrupt")
		return "", false
	}
	if e.Mode != string(mode) || e.Key != key {
		m.selfHeal(ctx, sk, "mismatch")
		return "", false
	}
	v, err := m.codec.Decode(e.Payload)
	if err != nil {
		m.selfHeal(ctx, sk, "value_decode")
		return "", false
	}
	m.hooks.SharedHit(mode)
	return v, true
}

func (m *Memo) storeShared(ctx context.Context, mode Mode, key, v string) {
	sk := util.StorageKey(m.ns, string(mode), key)
	payload, err := m.codec.Encode(v)
	if err != nil {
		m.hooks.SharedError("encode", err)
		return
	}
	raw, err := wire.EncodeEntry(wire.Entry{Mode: string(mode), Key: key, Payload: payload})
	if err != nil {
		m.hooks.SharedError("encode", err)
		return
	}
	ok, err := m.shared.Set(ctx, sk, raw, int64(len(raw)), m.sharedTTL)
	if err != nil {
		m.log.Warn("shared set failed", genlru.Fields{"key": sk, "err": err})
		m.hooks.SharedError("set", err)
		return
	}
	if !ok {
		m.log.Debug("shared set rejected by provider (pressure)", genlru.Fields{"key": sk})
	}
}

func (m *Memo) selfHeal(ctx context.Context, sk, reason string) {
	_ = m.shared.Del(ctx, sk)
	m.hooks.SelfHeal(sk, reason)
	m.log.Debug("dropped shared entry", genlru.Fields{"key": sk, "reason": reason})
}
