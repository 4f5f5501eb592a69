package monitor

import (
	"github.com/marcin-skalski/lol-cooldowns/internal/tui"
)

// publish replaces the status seen by GetSnapshot. It is called only from the polling
// goroutine.
func (m *Monitor) publish() {
	snap := &tui.Snapshot{
		Summoner: m.cfg.Summoner,
		Region:   m.cfg.Platform.Region(),
		State:    m.state.String(),
		LastPoll: m.lastPoll,
		NextPoll: m.nextPoll,
		Polls:    m.polls,
		Renders:  m.renders,
		Frame:    m.lastFrame,
	}
	if m.current != nil {
		snap.MatchID = m.current.ID
	}
	if m.lastErr != nil {
		snap.LastError = m.lastErr.Error()
	}
	if data := m.data.Snapshot(); data != nil {
		snap.StaticVersion = data.Version
	}
	m.status.Store(snap)
}

// GetSnapshot is safe to call from any goroutine.
func (m *Monitor) GetSnapshot() tui.Snapshot {
	snap := *m.status.Load()
	snap.Timestamp = m.now()
	return snap
}
