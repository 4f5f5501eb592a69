// Package render formats cooldown views for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/marcin-skalski/lol-cooldowns/internal/cooldowns"
	"github.com/marcin-skalski/lol-cooldowns/internal/match"
	"github.com/marcin-skalski/lol-cooldowns/internal/staticdata"
)

const (
	maxNameWidth     = 20
	maxCooldownWidth = 24
)

// Frame is everything a single render shows.
type Frame struct {
	Match         *match.Snapshot
	View          cooldowns.TeamView
	StaticVersion string
	RenderedAt    time.Time
}

type Renderer interface {
	Render(f Frame) error
}

// Terminal writes frames to w, colouring them according to w's capabilities.
type Terminal struct {
	w      io.Writer
	styles styles
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, styles: newStyles(lipgloss.NewRenderer(w))}
}

func (t *Terminal) Render(f Frame) error {
	if _, err := io.WriteString(t.w, format(t.styles, f)+"\n"); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// String formats f with the default lipgloss renderer.
func String(f Frame) string {
	return format(newStyles(lipgloss.DefaultRenderer()), f)
}

func format(s styles, f Frame) string {
	var b strings.Builder

	if header := Header(f.Match); header != "" {
		b.WriteString(s.header.Render(header))
		b.WriteString("\n")
	}

	for i, team := range f.View.Teams {
		if len(team.Rows) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(s.team(i).Render(Title(team)))
		b.WriteString("\n")
		b.WriteString(teamTable(s, i, team))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// Header describes the match, e.g. "Ranked Dynamic │ Summoner's Rift │ Classic".
func Header(m *match.Snapshot) string {
	if m == nil {
		return ""
	}
	parts := []string{m.Queue.String(), m.Map.String(), m.Mode.String()}
	if !m.StartTime.IsZero() {
		parts = append(parts, "started "+m.StartTime.Format("15:04"))
	}
	return strings.Join(parts, " │ ")
}

func Title(team cooldowns.Team) string {
	side := "Their Team"
	if team.HasViewer() {
		side = "Your Team"
	}
	return fmt.Sprintf("%s (%s)", team.Name(), side)
}

func teamTable(s styles, idx int, team cooldowns.Team) string {
	headers := append([]string{"Champion", "Summoner"}, staticdata.AbilitySlots[:]...)

	rows := make([][]string, 0, len(team.Rows))
	for _, r := range team.Rows {
		row := []string{truncate(r.ChampionName, maxNameWidth), truncate(summonerLabel(r), maxNameWidth)}
		for _, cd := range r.Cooldowns {
			row = append(row, truncate(cd, maxCooldownWidth))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.team(idx)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.cell.Bold(true)
			case row >= 0 && row < len(team.Rows) && team.Rows[row].IsViewer:
				return s.viewer
			default:
				return s.cell
			}
		})
	return t.String()
}

func summonerLabel(r cooldowns.Row) string {
	if r.Bot {
		return r.SummonerName + " (bot)"
	}
	return r.SummonerName
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
