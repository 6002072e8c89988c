package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitInvalidURL(t *testing.T) {
	err := Init("://invalid-url", "")
	assert.Error(t, err)
}

func TestInitWithMiniredis(t *testing.T) {
	srv := miniredis.RunT(t)
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Init("redis://"+srv.Addr(), "ignored-by-miniredis"))
	assert.True(t, Enabled())
	require.NoError(t, Close())
	assert.False(t, Enabled())
}

func TestInitPingFailureKeepsClientUnset(t *testing.T) {
	SetClient(nil)
	orig := pingClient
	pingClient = func(context.Context, *goredis.Client) error { return assert.AnError }
	t.Cleanup(func() { pingClient = orig })

	assert.ErrorIs(t, Init("redis://127.0.0.1:6399", ""), assert.AnError)
	assert.False(t, Enabled())
}

func TestSetClientAndBasicOpsWithUnreachableRedis(t *testing.T) {
	cli := goredis.NewClient(&goredis.Options{
		Addr:         "127.0.0.1:0", // invalid/unreachable
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
	})
	SetClient(cli)
	t.Cleanup(func() { SetClient(nil) })
	assert.NotNil(t, GetClient())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.Error(t, Set(ctx, "k", "v", time.Second))
	_, err := Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, IsNil(err))
	assert.Error(t, Del(ctx, "k"))
	_, err = SetNX(ctx, "k", "v", time.Second)
	assert.Error(t, err)
	_, err = Release(ctx, "k", "v")
	assert.Error(t, err)
}

func TestReleaseOnlyRemovesOwnToken(t *testing.T) {
	srv := miniredis.RunT(t)
	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	SetClient(cli)
	t.Cleanup(func() { _ = Close() })
	ctx := context.Background()

	acquired, err := SetNX(ctx, "lock:conv-1", "token-a", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	acquired, err = SetNX(ctx, "lock:conv-1", "token-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	released, err := Release(ctx, "lock:conv-1", "token-b")
	require.NoError(t, err)
	assert.False(t, released)
	assert.True(t, srv.Exists("lock:conv-1"))

	released, err = Release(ctx, "lock:conv-1", "token-a")
	require.NoError(t, err)
	assert.True(t, released)
	assert.False(t, srv.Exists("lock:conv-1"))

	_, err = Get(ctx, "lock:conv-1")
	assert.True(t, IsNil(err))
}
