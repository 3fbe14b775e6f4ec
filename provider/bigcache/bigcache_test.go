package bigcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, Config{LifeWindow: time.Minute, Shards: 16, MaxEntriesInWindow: 100, MaxEntrySize: 64})
	require.NoError(t, err)
	defer p.Close(ctx)

	ok, err := p.Set(ctx, "memo:test:snake:fooBar", []byte("foo_bar"), 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, p.Len())

	got, hit, err := p.Get(ctx, "memo:test:snake:fooBar")
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, []byte("foo_bar"), got)

	require.NoError(t, p.Del(ctx, "memo:test:snake:fooBar"))
	_, hit, err = p.Get(ctx, "memo:test:snake:fooBar")
	require.NoError(t, err)
	require.False(t, hit)

	// deleting a missing key is not an error
	require.NoError(t, p.Del(ctx, "memo:test:snake:missing"))
}
