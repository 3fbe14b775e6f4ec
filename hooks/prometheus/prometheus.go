// Package prometheus exports store and memo hook events as Prometheus counters.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/genlru"
	"github.com/unkn0wn-root/genlru/memo"
)

// Hooks implements genlru.Hooks and memo.Hooks.
type Hooks struct {
	rollovers       prometheus.Counter
	rolloverEvicted prometheus.Counter
	expired         *prometheus.CounterVec
	resizes         prometheus.Counter
	resizeEvicted   prometheus.Counter
	capacity        prometheus.Gauge

	lookups      *prometheus.CounterVec
	skipped      *prometheus.CounterVec
	sharedHits   *prometheus.CounterVec
	sharedErrors *prometheus.CounterVec
	selfHeals    *prometheus.CounterVec
}

var (
	_ genlru.Hooks = (*Hooks)(nil)
	_ memo.Hooks   = (*Hooks)(nil)
)

// New creates the collectors and registers them with reg. name is attached
// as a constant "cache" label so several caches can share a registry.
func New(reg prometheus.Registerer, name string) *Hooks {
	cl := prometheus.Labels{"cache": name}
	h := &Hooks{
		rollovers: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "genlru_rollovers_total",
			Help:        "Total number of generation rollovers",
			ConstLabels: cl,
		}),
		rolloverEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "genlru_rollover_evicted_total",
			Help:        "Entries dropped with the previous generation",
			ConstLabels: cl,
		}),
		expired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "genlru_expired_total",
			Help:        "Stale entries removed on touch",
			ConstLabels: cl,
		}, []string{"notified"}),
		resizes: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "genlru_resizes_total",
			Help:        "Total number of resizes",
			ConstLabels: cl,
		}),
		resizeEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "genlru_resize_evicted_total",
			Help:        "Live entries dropped to fit a smaller capacity",
			ConstLabels: cl,
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "genlru_capacity",
			Help:        "Configured capacity (seeded with SetCapacity, updated on resize)",
			ConstLabels: cl,
		}),

		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "genlru_memo_lookups_total",
			Help:        "Local memo lookups by mode and result",
			ConstLabels: cl,
		}, []string{"mode", "result"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "genlru_memo_skipped_total",
			Help:        "Inputs too long to memoize",
			ConstLabels: cl,
		}, []string{"mode"}),
		sharedHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "genlru_memo_shared_hits_total",
			Help:        "Local misses served by the shared provider",
			ConstLabels: cl,
		}, []string{"mode"}),
		sharedErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "genlru_memo_shared_errors_total",
			Help:        "Failed shared provider calls",
			ConstLabels: cl,
		}, []string{"op"}),
		selfHeals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "genlru_memo_self_heals_total",
			Help:        "Shared entries deleted on read",
			ConstLabels: cl,
		}, []string{"reason"}),
	}

	reg.MustRegister(
		h.rollovers,
		h.rolloverEvicted,
		h.expired,
		h.resizes,
		h.resizeEvicted,
		h.capacity,
		h.lookups,
		h.skipped,
		h.sharedHits,
		h.sharedErrors,
		h.selfHeals,
	)
	return h
}

// SetCapacity seeds the capacity gauge. Resized keeps it current after that;
// without a seed the gauge reads 0 until the first resize.
func (h *Hooks) SetCapacity(n int) { h.capacity.Set(float64(n)) }

func (h *Hooks) Rollover(evicted int) {
	h.rollovers.Inc()
	h.rolloverEvicted.Add(float64(evicted))
}

func (h *Hooks) Expired(notified bool) {
	h.expired.WithLabelValues(boolToStr(notified)).Inc()
}

func (h *Hooks) Resized(_, to, evicted int) {
	h.resizes.Inc()
	h.resizeEvicted.Add(float64(evicted))
	h.capacity.Set(float64(to))
}

func (h *Hooks) Hit(mode memo.Mode)  { h.lookups.WithLabelValues(string(mode), "hit").Inc() }
func (h *Hooks) Miss(mode memo.Mode) { h.lookups.WithLabelValues(string(mode), "miss").Inc() }

func (h *Hooks) Skipped(mode memo.Mode, _ int) { h.skipped.WithLabelValues(string(mode)).Inc() }
func (h *Hooks) SharedHit(mode memo.Mode)      { h.sharedHits.WithLabelValues(string(mode)).Inc() }

func (h *Hooks) SharedError(op string, _ error) { h.sharedErrors.WithLabelValues(op).Inc() }
func (h *Hooks) SelfHeal(_, reason string)      { h.selfHeals.WithLabelValues(reason).Inc() }

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
