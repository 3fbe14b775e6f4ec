// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/genlru/hooks/async"
//	"github.com/unkn0wn-root/genlru/memo"
//	"github.com/unkn0wn-root/genlru/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    SelfHealEvery: 10, // sample logs: ~every 10th self-heal
//	    SkippedEvery:  100,
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	m, _ := memo.New(memo.Options{
//	    Shared:     provider,
//	    Hooks:      hooks,
//	    StoreHooks: hooks, // or `raw` if you don’t want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/genlru"
	"github.com/unkn0wn-root/genlru/memo"
)

// Target is satisfied by hook sinks that observe both the store and the memo.
type Target interface {
	genlru.Hooks
	memo.Hooks
}

type Hooks struct {
	inner   Target
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Uint64
}

var (
	_ genlru.Hooks = (*Hooks)(nil)
	_ memo.Hooks   = (*Hooks)(nil)
)

func New(inner Target, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events fired after
// Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded because the queue was full.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	defer func() {
		// send on closed queue
		if recover() != nil {
			h.dropped.Add(1)
		}
	}()
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) Rollover(n int)        { h.try(func() { h.inner.Rollover(n) }) }
func (h *Hooks) Expired(notified bool) { h.try(func() { h.inner.Expired(notified) }) }
func (h *Hooks) Resized(from, to, evicted int) {
	h.try(func() { h.inner.Resized(from, to, evicted) })
}

func (h *Hooks) Hit(m memo.Mode)       { h.try(func() { h.inner.Hit(m) }) }
func (h *Hooks) Miss(m memo.Mode)      { h.try(func() { h.inner.Miss(m) }) }
func (h *Hooks) SharedHit(m memo.Mode) { h.try(func() { h.inner.SharedHit(m) }) }
func (h *Hooks) Skipped(m memo.Mode, n int) {
	h.try(func() { h.inner.Skipped(m, n) })
}
func (h *Hooks) SharedError(op string, err error) {
	h.try(func() { h.inner.SharedError(op, err) })
}
func (h *Hooks) SelfHeal(k, r string) { h.try(func() { h.inner.SelfHeal(k, r) }) }
