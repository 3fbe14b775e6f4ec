package prometheus

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/genlru"
	"github.com/unkn0wn-root/genlru/memo"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg, "keys")
	require.NotNil(t, h)

	h.Rollover(3)
	h.Expired(true)
	h.Expired(false)
	h.Resized(10, 4, 2)
	h.Hit(memo.Camel)
	h.Miss(memo.Camel)
	h.Skipped(memo.Snake, 200)
	h.SharedHit(memo.Pascal)
	h.SharedError("get", nil)
	h.SelfHeal("k", "corrupt")

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["genlru_rollovers_total"])
	assert.True(t, names["genlru_expired_total"])
	assert.True(t, names["genlru_capacity"])
	assert.True(t, names["genlru_memo_lookups_total"])
	assert.True(t, names["genlru_memo_self_heals_total"])

	assert.Equal(t, 3.0, testutil.ToFloat64(h.rolloverEvicted))
	assert.Equal(t, 4.0, testutil.ToFloat64(h.capacity))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.expired.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.sharedErrors.WithLabelValues("get")))
}

func TestCapacityGauge(t *testing.T) {
	h := New(prometheus.NewRegistry(), "keys")
	assert.Equal(t, 0.0, testutil.ToFloat64(h.capacity))

	h.SetCapacity(100)
	assert.Equal(t, 100.0, testutil.ToFloat64(h.capacity))

	h.Resized(100, 40, 0)
	assert.Equal(t, 40.0, testutil.ToFloat64(h.capacity))
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg, "a")
	assert.Panics(t, func() { New(reg, "a") })
}

func TestWiredIntoMemo(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg, "keys")

	m, err := memo.New(memo.Options{Capacity: 1, Hooks: h, StoreHooks: h})
	require.NoError(t, err)

	ctx := context.Background()
	m.Do(ctx, memo.Camel, "a", strings.ToUpper)
	m.Do(ctx, memo.Camel, "a", strings.ToUpper)
	m.Do(ctx, memo.Camel, "b", strings.ToUpper)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.lookups.WithLabelValues("camel", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(h.lookups.WithLabelValues("camel", "miss")))
	// capacity 1: every insert rolls over, including the promotion of "a"
	assert.Equal(t, 3.0, testutil.ToFloat64(h.rollovers))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.rolloverEvicted))

	var _ genlru.Hooks = h
}
