package match

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/riot"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSource struct {
	summoners   map[string]riot.Summoner
	summonerErr error
	game        *riot.CurrentGameInfo
	gameErr     error
	lookups     []string
}

func (f *fakeSource) SummonerByName(ctx context.Context, p lol.Platform, name string) (*riot.Summoner, error) {
	f.lookups = append(f.lookups, name)
	if f.summonerErr != nil {
		return nil, f.summonerErr
	}
	s, ok := f.summoners[name]
	if !ok {
		return nil, riot.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSource) CurrentGame(ctx context.Context, p lol.Platform, summonerID int64) (*riot.CurrentGameInfo, error) {
	return f.game, f.gameErr
}

type memCache struct {
	ids       map[string]PlayerID
	lookupErr error
	stores    int
}

func (m *memCache) LookupPlayer(ctx context.Context, p lol.Platform, name string) (PlayerID, bool, error) {
	if m.lookupErr != nil {
		return 0, false, m.lookupErr
	}
	id, ok := m.ids[string(p)+":"+name]
	return id, ok, nil
}

func (m *memCache) StorePlayer(ctx context.Context, p lol.Platform, name string, id PlayerID) error {
	m.stores++
	m.ids[string(p)+":"+name] = id
	return nil
}

func TestNormalizeName(t *testing.T) {
	want := NormalizeName("fnaticrekkles")
	assert.Equal(t, "fnaticrekkles", want)

	for _, name := range []string{"Fnatic Rekkles", " FNATIC REKKLES ", "fnatic\trekkles", "FnaticRekkles"} {
		t.Run(name, func(t *testing.T) {
			got := NormalizeName(name)
			assert.Equal(t, want, got)
			assert.Equal(t, got, NormalizeName(got), "idempotent")
		})
	}

	assert.Equal(t, "łukasz", NormalizeName("Ł U K A S Z"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestResolvePlayer(t *testing.T) {
	src := &fakeSource{summoners: map[string]riot.Summoner{
		"fnaticrekkles": {ID: 42, Name: "Fnatic Rekkles"},
	}}
	l := NewLocator(src, nil, discardLogger())

	id, err := l.ResolvePlayer(context.Background(), lol.PlatformEUW, " Fnatic Rekkles")
	require.NoError(t, err)
	assert.Equal(t, PlayerID(42), id)
	assert.Equal(t, []string{"fnaticrekkles"}, src.lookups)
}

func TestResolvePlayer_NotFound(t *testing.T) {
	l := NewLocator(&fakeSource{}, nil, discardLogger())

	_, err := l.ResolvePlayer(context.Background(), lol.PlatformEUW, "nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	_, err = l.ResolvePlayer(context.Background(), lol.PlatformEUW, "  ")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestResolvePlayer_TransportErrorPropagates(t *testing.T) {
	src := &fakeSource{summonerErr: &riot.StatusError{Code: 500, Message: "oops"}}
	l := NewLocator(src, nil, discardLogger())

	_, err := l.ResolvePlayer(context.Background(), lol.PlatformEUW, "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlayerNotFound)
}

func TestResolvePlayer_Cache(t *testing.T) {
	src := &fakeSource{summoners: map[string]riot.Summoner{"rekkles": {ID: 7}}}
	cache := &memCache{ids: map[string]PlayerID{}}
	l := NewLocator(src, cache, discardLogger())
	ctx := context.Background()

	id, err := l.ResolvePlayer(ctx, lol.PlatformEUW, "Rekkles")
	require.NoError(t, err)
	assert.Equal(t, PlayerID(7), id)
	assert.Equal(t, 1, cache.stores)

	id, err = l.ResolvePlayer(ctx, lol.PlatformEUW, "REKKLES")
	require.NoError(t, err)
	assert.Equal(t, PlayerID(7), id)
	assert.Len(t, src.lookups, 1, "second lookup served from cache")

	// cache failures fall back to the API
	cache.lookupErr = errors.New("redis down")
	_, err = l.ResolvePlayer(ctx, lol.PlatformEUW, "Rekkles")
	require.NoError(t, err)
	assert.Len(t, src.lookups, 2)
}

func TestCurrentMatch(t *testing.T) {
	src := &fakeSource{game: &riot.CurrentGameInfo{
		GameID:            1234,
		MapID:             11,
		GameMode:          "CLASSIC",
		GameType:          "MATCHED_GAME",
		GameQueueConfigID: 410,
		GameStartTime:     1482000000000,
		Participants: []riot.CurrentGameParticipant{
			{SummonerID: 1, SummonerName: "a", ChampionID: 1, TeamID: 100},
			{SummonerID: 2, SummonerName: "b", ChampionID: 2, TeamID: 200, Bot: true},
		},
	}}
	l := NewLocator(src, nil, discardLogger())

	snap, err := l.CurrentMatch(context.Background(), lol.PlatformEUW, 1)
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, int64(1234), snap.ID)
	assert.Equal(t, lol.PlatformEUW, snap.Platform)
	assert.Equal(t, lol.MapSummonersRift, snap.Map)
	assert.Equal(t, lol.GameModeClassic, snap.Mode)
	assert.Equal(t, lol.GameTypeMatched, snap.Type)
	assert.Equal(t, lol.QueueRankedDynamic, snap.Queue)
	assert.Equal(t, int64(1482000000000), snap.StartTime.UnixMilli())
	assert.Equal(t, []Participant{
		{SummonerID: 1, SummonerName: "a", ChampionID: 1, TeamID: 100},
		{SummonerID: 2, SummonerName: "b", ChampionID: 2, TeamID: 200, Bot: true},
	}, snap.Participants)
}

func TestCurrentMatch_NotInGame(t *testing.T) {
	src := &fakeSource{gameErr: &riot.StatusError{Code: 404}}
	l := NewLocator(src, nil, discardLogger())

	snap, err := l.CurrentMatch(context.Background(), lol.PlatformNA, 1)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestCurrentMatch_ErrorsPropagate(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"server error", &riot.StatusError{Code: 500}},
		{"rate limited", &riot.StatusError{Code: 429}},
		{"unauthorized", &riot.StatusError{Code: 401}},
		{"transport", errors.New("connection reset")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLocator(&fakeSource{gameErr: tc.err}, nil, discardLogger())
			snap, err := l.CurrentMatch(context.Background(), lol.PlatformNA, 1)
			require.Error(t, err)
			assert.Nil(t, snap)
		})
	}
}

func TestSnapshotSame(t *testing.T) {
	a := &Snapshot{ID: 1}
	assert.True(t, a.Same(&Snapshot{ID: 1}))
	assert.False(t, a.Same(&Snapshot{ID: 2}))
	assert.False(t, a.Same(nil))

	var none *Snapshot
	assert.True(t, none.Same(nil))
}
