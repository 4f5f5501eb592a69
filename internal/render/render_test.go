package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcin-skalski/lol-cooldowns/internal/cooldowns"
	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/match"
)

func testFrame() Frame {
	return Frame{
		Match: &match.Snapshot{
			ID:    1,
			Queue: lol.QueueRankedDynamic,
			Map:   lol.MapSummonersRift,
			Mode:  lol.GameModeClassic,
		},
		View: cooldowns.TeamView{Teams: [2]cooldowns.Team{
			{ID: 100, Rows: []cooldowns.Row{
				{ChampionName: "Annie", SummonerName: "me", Cooldowns: [4]string{"4", "8", "10", "120/100/80"}, IsViewer: true},
			}},
			{ID: 200, Rows: []cooldowns.Row{
				{ChampionName: "Ashe", SummonerName: "them", Cooldowns: [4]string{"18/14.5/11/7.5/4", "12/10/8/6/4", "90", "100/90/80"}},
			}},
		}},
		RenderedAt: time.Now(),
	}
}

func TestTerminalRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTerminal(&buf).Render(testFrame()))

	out := buf.String()
	assert.Contains(t, out, "Ranked Dynamic │ Summoner's Rift │ Classic")
	assert.Contains(t, out, "Blue Team (Your Team)")
	assert.Contains(t, out, "Red Team (Their Team)")
	for _, want := range []string{"Champion", "Summoner", "Q", "W", "E", "R", "Annie", "120/100/80", "Ashe", "12/10/8/6/4"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Blue Team"), strings.Index(out, "Red Team"))
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestTerminalRender_BotLabel(t *testing.T) {
	f := testFrame()
	f.View.Teams[1].Rows[0].SummonerName = "Ashe Bot"
	f.View.Teams[1].Rows[0].Bot = true

	var buf bytes.Buffer
	require.NoError(t, NewTerminal(&buf).Render(f))
	assert.Contains(t, buf.String(), "Ashe Bot (bot)")
	assert.NotContains(t, buf.String(), "me (bot)")
}

func TestTitle(t *testing.T) {
	team := cooldowns.Team{ID: 200, Rows: []cooldowns.Row{{IsViewer: true}}}
	assert.Equal(t, "Red Team (Your Team)", Title(team))

	team.Rows[0].IsViewer = false
	assert.Equal(t, "Red Team (Their Team)", Title(team))
}

func TestHeader(t *testing.T) {
	assert.Empty(t, Header(nil))

	start := time.Date(2016, 12, 17, 18, 30, 0, 0, time.Local)
	h := Header(&match.Snapshot{StartTime: start})
	assert.Equal(t, "Unknown Queue │ Unknown Map │ Unknown Mode │ started 18:30", h)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	got := truncate("averyveryverylongname", 10)
	assert.LessOrEqual(t, len([]rune(got)), 10)
	assert.True(t, strings.HasSuffix(got, "…"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTerminalRender_WriteError(t *testing.T) {
	err := NewTerminal(failingWriter{}).Render(testFrame())
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	out := String(testFrame())
	assert.Contains(t, out, "Annie")
	assert.False(t, strings.HasSuffix(out, "\n"))
}
