package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisrepo "go-sysadmin/internal/repository/redis"
)

func newLayered(t *testing.T) (*LayeredCache, *SimpleCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	l1 := New(time.Minute)
	l2 := NewRedisAdapter(redisrepo.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})))
	return NewLayered(l1, l2), l1, mr
}

func TestSimpleCache_TTLExpiry(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetEX(ctx, "k", "v", 10*time.Millisecond))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	time.Sleep(20 * time.Millisecond)
	v, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestLayered_L2HitBackfillsL1(t *testing.T) {
	c, l1, mr := newLayered(t)
	ctx := context.Background()

	// 只写 L2, 模拟另一实例写入
	mr.Set("k", "v")
	mr.SetTTL("k", time.Minute)

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	// 回填后 L1 可独立命中, 且透传了剩余 TTL
	got, err := l1.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	d, ok := l1.RemainingTTL(ctx, "k")
	assert.True(t, ok)
	assert.Greater(t, d, 30*time.Second)

	m := c.SnapshotMetrics()
	assert.Equal(t, uint64(1), m.HitsL2)
	assert.Equal(t, uint64(1), m.BackfillL1)
}

func TestLayered_L1HitSkipsL2(t *testing.T) {
	c, _, mr := newLayered(t)
	ctx := context.Background()

	require.NoError(t, c.SetEX(ctx, "k", "v", time.Minute))
	// 抹掉 L2, L1 仍然命中
	mr.FlushAll()

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.Equal(t, uint64(1), c.SnapshotMetrics().HitsL1)
}

func TestLayered_DelRemovesBothLevels(t *testing.T) {
	c, l1, mr := newLayered(t)
	ctx := context.Background()

	require.NoError(t, c.SetEX(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Del(ctx, "k"))

	v, err := l1.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.False(t, mr.Exists("k"))

	v, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, uint64(1), c.SnapshotMetrics().Miss)
}

func TestSnapshotMetrics_HitRate(t *testing.T) {
	c, _, _ := newLayered(t)
	ctx := context.Background()

	require.NoError(t, c.SetEX(ctx, "k", "v", time.Minute))
	_, _ = c.Get(ctx, "k")
	_, _ = c.Get(ctx, "absent")

	m := c.SnapshotMetrics()
	assert.InDelta(t, 0.5, m.HitRate, 0.001)
}
