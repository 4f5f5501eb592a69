package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcin-skalski/lol-cooldowns/internal/cooldowns"
	"github.com/marcin-skalski/lol-cooldowns/internal/match"
	"github.com/marcin-skalski/lol-cooldowns/internal/render"
)

type fakeProvider struct {
	snap  Snapshot
	calls int
}

func (f *fakeProvider) GetSnapshot() Snapshot {
	f.calls++
	return f.snap
}

func activeSnapshot() Snapshot {
	return Snapshot{
		Summoner: "Rekkles",
		Region:   "euw",
		State:    "active",
		MatchID:  42,
		LastPoll: time.Date(2016, 12, 17, 18, 30, 5, 0, time.Local),
		Polls:    3,
		Renders:  1,
		Frame: &render.Frame{
			Match: &match.Snapshot{ID: 42},
			View: cooldowns.TeamView{Teams: [2]cooldowns.Team{
				{ID: 100, Rows: []cooldowns.Row{{ChampionName: "Annie", Cooldowns: [4]string{"4", "8", "10", "120/100/80"}, IsViewer: true}}},
				{ID: 200, Rows: []cooldowns.Row{{ChampionName: "Ashe", Cooldowns: [4]string{"1", "2", "3", "4"}}}},
			}},
		},
	}
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(&fakeProvider{}, time.Second)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_RefreshAndTick(t *testing.T) {
	p := &fakeProvider{}
	m := NewModel(p, time.Second)
	assert.Equal(t, 1, p.calls)

	p.snap = activeSnapshot()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd)
	assert.Equal(t, int64(42), next.(Model).snapshot.MatchID)

	next, cmd = next.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick schedules the next tick")
	assert.Equal(t, 3, p.calls)
	assert.Equal(t, "active", next.(Model).snapshot.State)
}

func TestModel_NewMatchResetsScroll(t *testing.T) {
	p := &fakeProvider{snap: activeSnapshot()}
	m := NewModel(p, time.Second)
	m.scrollOffset = 3

	p.snap.MatchID = 43
	next, _ := m.Update(tickMsg(time.Now()))
	assert.Zero(t, next.(Model).scrollOffset)
}

func TestView(t *testing.T) {
	m := NewModel(&fakeProvider{snap: activeSnapshot()}, time.Second)
	out := m.View()

	assert.Contains(t, out, "Rekkles (EUW)")
	assert.Contains(t, out, "match 42")
	assert.Contains(t, out, "Blue Team (Your Team)")
	assert.Contains(t, out, "Annie")
	assert.Contains(t, out, "Last poll: 18:30:05")
	assert.Contains(t, out, "Next poll: -")
}

func TestView_Idle(t *testing.T) {
	snap := Snapshot{Summoner: "x", Region: "na", State: "idle", LastError: "status code: 503"}
	out := renderView(snap, 0, 0)

	assert.Contains(t, out, "waiting for a match")
	assert.Contains(t, out, "status code: 503")
}
