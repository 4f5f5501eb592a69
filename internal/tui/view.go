package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/marcin-skalski/lol-cooldowns/internal/render"
)

// chromeLines is the number of lines around the frame: header, section, status, footer.
const chromeLines = 8

func renderView(snap Snapshot, scrollOffset, height int) string {
	var b strings.Builder

	// Header
	header := fmt.Sprintf("lol-cooldowns │ %s (%s) │ %d polls │ %d renders",
		snap.Summoner, strings.ToUpper(snap.Region), snap.Polls, snap.Renders)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	// State
	state := fmt.Sprintf("%s %s", stateIcon(snap.State), snap.State)
	if snap.MatchID != 0 {
		state += fmt.Sprintf(" │ match %d", snap.MatchID)
	}
	if snap.StaticVersion != "" {
		state += " │ data " + snap.StaticVersion
	}
	b.WriteString(lipgloss.NewStyle().Foreground(stateColor(snap.State)).Render(state))
	b.WriteString("\n")

	if snap.LastError != "" {
		msg := snap.LastError
		if runewidth.StringWidth(msg) > 100 {
			msg = runewidth.Truncate(msg, 97, "...")
		}
		b.WriteString(errorStyle.Render("✗ " + msg))
		b.WriteString("\n")
	}

	// Cooldowns
	b.WriteString(sectionStyle.Render("⏱  Cooldowns"))
	b.WriteString("\n")
	b.WriteString(renderFrame(snap.Frame, scrollOffset, height))

	// Footer
	b.WriteString("\n")
	footer := fmt.Sprintf("Last poll: %s │ Next poll: %s │ q:quit r:refresh ↑/↓:scroll",
		formatClock(snap.LastPoll), formatClock(snap.NextPoll))
	b.WriteString(footerStyle.Render(footer))

	return b.String()
}

func renderFrame(frame *render.Frame, scrollOffset, height int) string {
	if frame == nil {
		return emptyStyle.Render("  (waiting for a match)")
	}

	lines := strings.Split(render.String(*frame), "\n")
	if scrollOffset > 0 && scrollOffset < len(lines) {
		lines = lines[scrollOffset:]
	}
	if height > chromeLines && len(lines) > height-chromeLines {
		lines = lines[:height-chromeLines]
	}
	return strings.Join(lines, "\n")
}

func frameLines(snap Snapshot) int {
	if snap.Frame == nil {
		return 0
	}
	return strings.Count(render.String(*snap.Frame), "\n") + 1
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("15:04:05")
}
