// Package staticdata keeps a local, versioned copy of champion ability data in sync
// with the remote static-data endpoints.
package staticdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/marcin-skalski/lol-cooldowns/internal/riot"
)

const DefaultFileName = "champion_spells.json"

// Source is the remote side of the cache.
type Source interface {
	LatestVersion(ctx context.Context) (string, error)
	Download(ctx context.Context) (*Snapshot, error)
}

type riotSource struct {
	client *riot.Client
}

// NewRiotSource adapts the Riot client to a Source.
func NewRiotSource(client *riot.Client) Source {
	return &riotSource{client: client}
}

func (s *riotSource) LatestVersion(ctx context.Context) (string, error) {
	return s.client.LatestVersion(ctx)
}

func (s *riotSource) Download(ctx context.Context) (*Snapshot, error) {
	list, err := s.client.Champions(ctx)
	if err != nil {
		return nil, err
	}
	return FromChampionList(list)
}

// Cache owns the current Snapshot. Readers always see a complete snapshot; a refresh
// swaps the pointer only after the new data has been persisted.
type Cache struct {
	path    string
	source  Source
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
}

func New(path string, source Source, logger *slog.Logger) *Cache {
	return &Cache{
		path:   path,
		source: source,
		logger: logger,
	}
}

// Load reads the persisted snapshot. A missing file leaves the cache empty and is
// not an error.
func (c *Cache) Load() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		c.logger.Debug("no cached static data", "path", c.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read static data: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse static data %s: %w", c.path, err)
	}
	if err := snap.validate(); err != nil {
		return fmt.Errorf("invalid static data %s: %w", c.path, err)
	}

	c.current.Store(&snap)
	c.logger.Debug("loaded static data", "version", snap.Version, "champions", len(snap.Champions))
	return nil
}

// EnsureFresh downloads data when the cache is empty, or when checkRemote is set and
// the remote version is newer. On failure the previous snapshot stays in place.
func (c *Cache) EnsureFresh(ctx context.Context, checkRemote bool) error {
	snap := c.current.Load()
	if snap == nil {
		return c.download(ctx)
	}
	if !checkRemote {
		return nil
	}

	c.logger.Info("checking for updated data")
	latest, err := c.source.LatestVersion(ctx)
	if err != nil {
		return fmt.Errorf("latest static data version: %w", err)
	}

	c.logger.Debug("static data versions", "current", snap.Version, "latest", latest)
	if !IsNewer(latest, snap.Version) {
		return nil
	}
	return c.download(ctx)
}

func (c *Cache) download(ctx context.Context) error {
	c.logger.Info("downloading champion data")

	snap, err := c.source.Download(ctx)
	if err != nil {
		return fmt.Errorf("download static data: %w", err)
	}
	if err := snap.validate(); err != nil {
		return fmt.Errorf("download static data: %w", err)
	}

	if err := writeFileAtomic(c.path, snap); err != nil {
		return fmt.Errorf("persist static data: %w", err)
	}

	c.current.Store(snap)
	c.logger.Info("static data updated", "version", snap.Version, "champions", len(snap.Champions))
	return nil
}

func (c *Cache) Lookup(championID int) (ChampionAbilitySet, bool) {
	return c.current.Load().Lookup(championID)
}

// Snapshot returns the current snapshot, or nil when the cache is empty.
func (c *Cache) Snapshot() *Snapshot {
	return c.current.Load()
}

func (c *Cache) Empty() bool {
	return c.current.Load() == nil
}

func (c *Cache) Path() string {
	return c.path
}
