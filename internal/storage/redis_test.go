package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/match"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "lolcd:summoner:EUW1:fnaticrekkles", Key(lol.PlatformEUW, "fnaticrekkles"))
}

func TestNewPlayerCache_Disabled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cases := []struct {
		name string
		url  string
	}{
		{"empty url", ""},
		{"bad url", "http://not-redis"},
		{"unreachable", "redis://127.0.0.1:1/0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewPlayerCache(ctx, tc.url, time.Hour, discardLogger())
			assert.False(t, c.Enabled())

			id, ok, err := c.LookupPlayer(ctx, lol.PlatformEUW, "x")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, id)

			require.NoError(t, c.StorePlayer(ctx, lol.PlatformEUW, "x", 1))
			require.NoError(t, c.Close())
		})
	}
}

func newTestCache(t *testing.T, ttl time.Duration) (*PlayerCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	c := NewPlayerCacheWithClient(client, ttl, discardLogger())
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestPlayerCache_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	require.True(t, c.Enabled())

	id, ok, err := c.LookupPlayer(context.Background(), lol.PlatformEUW, "fnaticrekkles")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, id)
}

func TestPlayerCache_StoreAndLookup(t *testing.T) {
	c, srv := newTestCache(t, 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, c.StorePlayer(ctx, lol.PlatformEUW, "fnaticrekkles", 42))

	key := "lolcd:summoner:EUW1:fnaticrekkles"
	srv.CheckGet(t, key, "42")
	assert.Equal(t, 24*time.Hour, srv.TTL(key))

	id, ok, err := c.LookupPlayer(ctx, lol.PlatformEUW, "fnaticrekkles")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, match.PlayerID(42), id)

	// other platforms have their own keys
	_, ok, err = c.LookupPlayer(ctx, lol.PlatformNA, "fnaticrekkles")
	require.NoError(t, err)
	assert.False(t, ok)

	srv.FastForward(25 * time.Hour)
	_, ok, err = c.LookupPlayer(ctx, lol.PlatformEUW, "fnaticrekkles")
	require.NoError(t, err)
	assert.False(t, ok, "entry expires after the ttl")
}

func TestPlayerCache_MalformedValue(t *testing.T) {
	c, srv := newTestCache(t, time.Hour)
	require.NoError(t, srv.Set(Key(lol.PlatformEUW, "broken"), "not-a-number"))

	_, ok, err := c.LookupPlayer(context.Background(), lol.PlatformEUW, "broken")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "not-a-number")
}

func TestPlayerCache_ServerGone(t *testing.T) {
	c, srv := newTestCache(t, time.Hour)
	srv.Close()

	_, _, err := c.LookupPlayer(context.Background(), lol.PlatformEUW, "x")
	require.Error(t, err)
	require.Error(t, c.StorePlayer(context.Background(), lol.PlatformEUW, "x", 1))
}
