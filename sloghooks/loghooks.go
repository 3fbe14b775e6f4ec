package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/genlru"
	"github.com/unkn0wn-root/genlru/memo"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	SkippedEvery  uint64
	RolloverEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

// Hooks logs store and memo events to slog. Hit, Miss, SharedHit and
// notified expiries are too frequent to log and are ignored.
type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
	skippedCtr  atomic.Uint64
	rolloverCtr atomic.Uint64
}

var (
	_ genlru.Hooks = (*Hooks)(nil)
	_ memo.Hooks   = (*Hooks)(nil)
)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Rollover(evicted int) {
	if h.l == nil || evicted == 0 || !sample(h.opts.RolloverEvery, &h.rolloverCtr) {
		return
	}
	h.l.Debug("genlru.rollover", "evicted", evicted)
}

func (h *Hooks) Expired(bool) {}

func (h *Hooks) Resized(from, to, evicted int) {
	if h.l == nil {
		return
	}
	h.l.Info("genlru.resized",
		"from", from,
		"to", to,
		"evicted", evicted)
}

func (h *Hooks) Hit(memo.Mode)       {}
func (h *Hooks) Miss(memo.Mode)      {}
func (h *Hooks) SharedHit(memo.Mode) {}

func (h *Hooks) Skipped(mode memo.Mode, keyLen int) {
	if h.l == nil || !sample(h.opts.SkippedEvery, &h.skippedCtr) {
		return
	}
	h.l.Debug("genlru.memo_skipped",
		"mode", string(mode),
		"key_len", keyLen)
}

func (h *Hooks) SharedError(op string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("genlru.shared_error",
		"op", op,
		"err", err)
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("genlru.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}
