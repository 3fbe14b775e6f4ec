// Package redis adapts go-redis as a shared tier so memo results computed by
// one replica are reused by the others.
//
// Values are memo wire frames ("GLRU" magic, version, mode, key, codec
// payload) stored as plain strings under memo:<ns>:<mode>:<key>. Nothing
// else should write into that keyspace; foreign values are deleted by the
// memo on read.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/genlru/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

// DefaultPurgeBatch is the SCAN page size used by Purge.
const DefaultPurgeBatch = 512

type Redis struct {
	rdb         goredis.UniversalClient
	closeClient bool
	defaultTTL  time.Duration
	purgeBatch  int64
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this provider exclusively owns the client

	// DefaultTTL applies to writes that carry no TTL (ttl <= 0).
	// 0 => keep forever.
	DefaultTTL time.Duration
	PurgeBatch int // 0 => DefaultPurgeBatch
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	batch := cfg.PurgeBatch
	if batch <= 0 {
		batch = DefaultPurgeBatch
	}
	return &Redis{
		rdb:         cfg.Client,
		closeClient: cfg.CloseClient,
		defaultTTL:  max(cfg.DefaultTTL, 0),
		purgeBatch:  int64(batch),
	}, nil
}

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	if err := p.rdb.Set(ctx, key, value, p.ttl(ttl)).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Redis) ttl(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return p.defaultTTL // 0 => no expiry
}

func (p *Redis) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

// Purge deletes every memo entry of namespace ns and returns how many keys
// were removed. It walks the keyspace with SCAN, so entries written
// concurrently may survive.
func (p *Redis) Purge(ctx context.Context, ns string) (int, error) {
	match := "memo:" + ns + ":*"
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := p.rdb.Scan(ctx, cursor, match, p.purgeBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("redis provider: scan %q: %w", match, err)
		}
		if len(keys) > 0 {
			n, err := p.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("redis provider: purge %q: %w", match, err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
