package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/riot"
)

var ErrPlayerNotFound = errors.New("player not found")

// Source is the subset of the Riot client the locator needs.
type Source interface {
	SummonerByName(ctx context.Context, p lol.Platform, name string) (*riot.Summoner, error)
	CurrentGame(ctx context.Context, p lol.Platform, summonerID int64) (*riot.CurrentGameInfo, error)
}

// IDCache remembers resolved player ids across runs. Names are already normalized.
type IDCache interface {
	LookupPlayer(ctx context.Context, p lol.Platform, name string) (PlayerID, bool, error)
	StorePlayer(ctx context.Context, p lol.Platform, name string, id PlayerID) error
}

type Locator struct {
	source Source
	cache  IDCache
	logger *slog.Logger
}

// NewLocator creates a locator. cache may be nil.
func NewLocator(source Source, cache IDCache, logger *slog.Logger) *Locator {
	return &Locator{source: source, cache: cache, logger: logger}
}

func (l *Locator) ResolvePlayer(ctx context.Context, p lol.Platform, displayName string) (PlayerID, error) {
	name := NormalizeName(displayName)
	if name == "" {
		return 0, fmt.Errorf("resolve %q: %w", displayName, ErrPlayerNotFound)
	}

	if l.cache != nil {
		id, ok, err := l.cache.LookupPlayer(ctx, p, name)
		if err != nil {
			l.logger.Warn("player cache lookup failed", "name", name, "err", err)
		} else if ok {
			l.logger.Debug("player id from cache", "name", name, "id", id)
			return id, nil
		}
	}

	summoner, err := l.source.SummonerByName(ctx, p, name)
	if errors.Is(err, riot.ErrNotFound) {
		return 0, fmt.Errorf("resolve %q on %s: %w", displayName, p.Region(), ErrPlayerNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve %q: %w", displayName, err)
	}

	id := PlayerID(summoner.ID)
	if l.cache != nil {
		if err := l.cache.StorePlayer(ctx, p, name, id); err != nil {
			l.logger.Warn("player cache store failed", "name", name, "err", err)
		}
	}
	l.logger.Debug("resolved player", "name", summoner.Name, "id", id)
	return id, nil
}

// CurrentMatch returns nil without error only when the API answers that the player is
// not in a game. Every other failure is returned.
func (l *Locator) CurrentMatch(ctx context.Context, p lol.Platform, id PlayerID) (*Snapshot, error) {
	info, err := l.source.CurrentGame(ctx, p, int64(id))
	if errors.Is(err, riot.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snap := fromGameInfo(p, info)
	l.logger.Debug("current match",
		"id", snap.ID,
		"queue", snap.Queue,
		"map", snap.Map,
		"mode", snap.Mode,
		"participants", len(snap.Participants))
	return snap, nil
}
