package cli

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals // Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// palette applies styles only when color output is enabled.
type palette struct {
	enabled bool
}

func newPalette(enabled bool) palette {
	return palette{enabled: enabled}
}

func (p palette) render(style lipgloss.Style, s string) string {
	if !p.enabled {
		return s
	}

	return style.Render(s)
}

func (p palette) header(s string) string  { return p.render(headerStyle, s) }
func (p palette) success(s string) string { return p.render(successStyle, s) }
func (p palette) warning(s string) string { return p.render(warningStyle, s) }
func (p palette) failure(s string) string { return p.render(failureStyle, s) }
