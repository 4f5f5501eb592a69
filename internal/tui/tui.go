package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type SnapshotProvider interface {
	GetSnapshot() Snapshot
}

type Model struct {
	provider        SnapshotProvider
	snapshot        Snapshot
	refreshInterval time.Duration
	scrollOffset    int
	height          int
}

type tickMsg time.Time

func NewModel(provider SnapshotProvider, refreshInterval time.Duration) Model {
	return Model{
		provider:        provider,
		snapshot:        provider.GetSnapshot(),
		refreshInterval: refreshInterval,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.refreshInterval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			// Manual refresh
			m.snapshot = m.provider.GetSnapshot()
			return m, nil
		case "up", "k":
			if m.scrollOffset > 0 {
				m.scrollOffset--
			}
		case "down", "j":
			m.scrollOffset = min(m.scrollOffset+1, m.maxOffset())
		case "home", "g":
			m.scrollOffset = 0
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.scrollOffset = min(m.scrollOffset, m.maxOffset())

	case tickMsg:
		prev := m.snapshot.MatchID
		m.snapshot = m.provider.GetSnapshot()
		// New match, start from the top
		if m.snapshot.MatchID != prev {
			m.scrollOffset = 0
		}
		return m, tickCmd(m.refreshInterval)
	}

	return m, nil
}

func (m Model) View() string {
	return renderView(m.snapshot, m.scrollOffset, m.height)
}

func (m Model) maxOffset() int {
	if m.height <= 0 {
		return 0
	}
	return max(0, frameLines(m.snapshot)-m.height+chromeLines)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
