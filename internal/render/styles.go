package render

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue   = lipgloss.Color("39")
	colorRed    = lipgloss.Color("196")
	colorViewer = lipgloss.Color("220") // yellow
	colorHeader = lipgloss.Color("212")
)

type styles struct {
	header lipgloss.Style
	blue   lipgloss.Style
	red    lipgloss.Style
	cell   lipgloss.Style
	viewer lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Bold(true).Foreground(colorHeader),
		blue:   r.NewStyle().Bold(true).Foreground(colorBlue),
		red:    r.NewStyle().Bold(true).Foreground(colorRed),
		cell:   r.NewStyle().Padding(0, 1),
		viewer: r.NewStyle().Padding(0, 1).Bold(true).Foreground(colorViewer),
	}
}

func (s styles) team(idx int) lipgloss.Style {
	if idx == 0 {
		return s.blue
	}
	return s.red
}
