// Package monitor drives the poll loop: it detects match start, continuation and end,
// and renders cooldowns once per new match.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/marcin-skalski/lol-cooldowns/internal/cooldowns"
	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/match"
	"github.com/marcin-skalski/lol-cooldowns/internal/notify"
	"github.com/marcin-skalski/lol-cooldowns/internal/render"
	"github.com/marcin-skalski/lol-cooldowns/internal/riot"
	"github.com/marcin-skalski/lol-cooldowns/internal/staticdata"
	"github.com/marcin-skalski/lol-cooldowns/internal/tui"
)

type State int

const (
	StateIdle State = iota
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

type Locator interface {
	CurrentMatch(ctx context.Context, p lol.Platform, id match.PlayerID) (*match.Snapshot, error)
}

// StaticData is satisfied by *staticdata.Cache.
type StaticData interface {
	EnsureFresh(ctx context.Context, checkRemote bool) error
	Lookup(championID int) (staticdata.ChampionAbilitySet, bool)
	Snapshot() *staticdata.Snapshot
}

// Journal is satisfied by *journal.Journal.
type Journal interface {
	Started(ctx context.Context, m *match.Snapshot, at time.Time) error
	Ended(ctx context.Context, m *match.Snapshot, at time.Time) error
}

type Config struct {
	Platform        lol.Platform
	Player          match.PlayerID
	Summoner        string
	CheckForUpdates bool
	IdleInterval    time.Duration
	ActiveInterval  time.Duration
}

// maxRenderBackoff caps the delay between render attempts for a match that keeps
// failing.
const maxRenderBackoff = 10 * time.Minute

type Monitor struct {
	cfg      Config
	locator  Locator
	data     StaticData
	renderer render.Renderer
	journal  Journal
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time

	// owned by the polling goroutine
	state         State
	current       *match.Snapshot
	pendingRender bool
	renderFails   int
	retryRenderAt time.Time
	lastFrame     *render.Frame
	lastErr       error
	lastPoll      time.Time
	nextPoll      time.Time
	polls         int
	renders       int

	status atomic.Pointer[tui.Snapshot]
}

type Option func(*Monitor)

func WithJournal(j Journal) Option {
	return func(m *Monitor) {
		m.journal = j
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(m *Monitor) {
		m.notifier = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		m.now = now
	}
}

// New creates a monitor in the idle state. A nil renderer only publishes frames
// through GetSnapshot.
func New(cfg Config, locator Locator, data StaticData, renderer render.Renderer, logger *slog.Logger, opts ...Option) *Monitor {
	m := &Monitor{
		cfg:      cfg,
		locator:  locator,
		data:     data,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.publish()
	return m
}

// TickResult describes one evaluation of the state machine.
type TickResult struct {
	From      State
	To        State
	MatchID   int64
	Rendered  bool
	RenderErr error
}

// Tick polls once and applies the resulting transition. A poll error leaves the
// state unchanged and is returned. Render failures do not change the state; they are
// reported in RenderErr and retried on later ticks of the same match with an
// exponential backoff.
func (m *Monitor) Tick(ctx context.Context) (TickResult, error) {
	res := TickResult{From: m.state}

	snap, err := m.locator.CurrentMatch(ctx, m.cfg.Platform, m.cfg.Player)
	m.polls++
	m.lastPoll = m.now()
	if err != nil {
		m.lastErr = err
		res.To = m.state
		if m.current != nil {
			res.MatchID = m.current.ID
		}
		m.publish()
		return res, fmt.Errorf("poll current match: %w", err)
	}
	m.lastErr = nil

	switch {
	case snap == nil:
		if m.current != nil {
			m.logger.Info("match ended", "match", m.current.ID)
			m.recordEnded(ctx, m.current)
		}
		m.state = StateIdle
		m.current = nil
		m.pendingRender = false
		m.resetRenderBackoff()

	case m.current.Same(snap):
		if m.pendingRender {
			m.current = snap
		}

	default:
		if m.current != nil {
			m.logger.Info("new match replaced previous one", "previous", m.current.ID, "match", snap.ID)
			m.recordEnded(ctx, m.current)
		} else {
			m.logger.Info("match started", "match", snap.ID, "queue", snap.Queue, "map", snap.Map, "ranked", snap.Queue.Ranked())
		}
		m.state = StateActive
		m.current = snap
		m.pendingRender = true
		m.resetRenderBackoff()
		m.recordStarted(ctx, snap)
	}

	if m.pendingRender && !m.now().Before(m.retryRenderAt) {
		if err := m.render(ctx, m.current); err != nil {
			res.RenderErr = err
			m.lastErr = err
			m.renderFails++
			m.retryRenderAt = m.now().Add(m.renderBackoff(m.renderFails))
		} else {
			res.Rendered = true
			m.pendingRender = false
			m.resetRenderBackoff()
		}
	}

	res.To = m.state
	if m.current != nil {
		res.MatchID = m.current.ID
	}
	m.publish()
	return res, nil
}

// renderBackoff is the delay after n consecutive render failures. The first failure
// is retried on the next tick.
func (m *Monitor) renderBackoff(n int) time.Duration {
	if n <= 1 {
		return 0
	}
	return min(m.cfg.ActiveInterval<<min(n-1, 16), maxRenderBackoff)
}

func (m *Monitor) resetRenderBackoff() {
	m.renderFails = 0
	m.retryRenderAt = time.Time{}
}

func (m *Monitor) render(ctx context.Context, snap *match.Snapshot) error {
	if err := m.data.EnsureFresh(ctx, m.cfg.CheckForUpdates); err != nil {
		if m.data.Snapshot() == nil {
			return fmt.Errorf("static data: %w", err)
		}
		m.logger.Warn("static data refresh failed, using cached data", "err", err)
	}

	view, err := cooldowns.Aggregate(snap.Participants, m.cfg.Player, m.data)
	if err != nil {
		return fmt.Errorf("aggregate cooldowns: %w", err)
	}
	if team, ok := view.Viewer(); ok {
		m.logger.Debug("team view", "match", snap.ID, "viewer_team", team.Name(), "teams", view.Teams)
	} else {
		m.logger.Debug("team view", "match", snap.ID, "teams", view.Teams)
	}

	frame := render.Frame{
		Match:      snap,
		View:       view,
		RenderedAt: m.now(),
	}
	if data := m.data.Snapshot(); data != nil {
		frame.StaticVersion = data.Version
	}

	if m.renderer != nil {
		if err := m.renderer.Render(frame); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	m.lastFrame = &frame
	m.renders++

	if m.notifier != nil {
		if err := m.notifier.Notify(ctx, frame); err != nil {
			m.logger.Warn("notify failed", "match", snap.ID, "err", err)
		}
	}
	return nil
}

func (m *Monitor) recordStarted(ctx context.Context, snap *match.Snapshot) {
	if m.journal == nil {
		return
	}
	if err := m.journal.Started(ctx, snap, m.now()); err != nil {
		m.logger.Warn("journal start failed", "match", snap.ID, "err", err)
	}
}

func (m *Monitor) recordEnded(ctx context.Context, snap *match.Snapshot) {
	if m.journal == nil {
		return
	}
	if err := m.journal.Ended(ctx, snap, m.now()); err != nil {
		m.logger.Warn("journal end failed", "match", snap.ID, "err", err)
	}
}

// Once performs a single evaluation from the idle state. Any failure, including a
// failed render, is returned as the error.
func (m *Monitor) Once(ctx context.Context) (TickResult, error) {
	res, err := m.Tick(ctx)
	if err != nil {
		return res, err
	}
	return res, res.RenderErr
}

// Run polls until ctx is cancelled or the API key is rejected. Other failures are
// logged and polling continues on the next tick.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Info("monitor started",
		"summoner", m.cfg.Summoner,
		"platform", m.cfg.Platform,
		"idle_interval", m.cfg.IdleInterval,
		"active_interval", m.cfg.ActiveInterval)

	for {
		res, err := m.Tick(ctx)
		if ctx.Err() != nil {
			m.logger.Info("monitor stopped")
			return nil
		}

		switch {
		case err != nil && riot.IsCredentialError(err):
			return err
		case err != nil:
			m.logger.Error("poll failed", "err", err)
		case res.RenderErr != nil && riot.IsCredentialError(res.RenderErr):
			return res.RenderErr
		case res.RenderErr != nil:
			m.logger.Error("render failed, retrying next poll", "match", res.MatchID, "err", res.RenderErr)
		}

		wait := m.interval(err)
		m.nextPoll = m.now().Add(wait)
		m.publish()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			m.logger.Info("monitor stopped")
			return nil
		case <-timer.C:
		}
	}
}

func (m *Monitor) interval(pollErr error) time.Duration {
	wait := m.cfg.IdleInterval
	if m.state == StateActive {
		wait = m.cfg.ActiveInterval
	}

	var statusErr *riot.StatusError
	if errors.As(pollErr, &statusErr) && statusErr.RetryAfter > wait {
		wait = statusErr.RetryAfter
	}
	return wait
}

func (m *Monitor) State() State {
	return m.state
}

func (m *Monitor) Current() *match.Snapshot {
	return m.current
}
