package display

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - species, subtitles
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - IVs
	ColorMuted     = lipgloss.Color("#666666") // Gray - base stats, hints
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - exact IVs
	ColorLabel     = lipgloss.Color("#a8dadc") // Stat labels
)

// Styles groups the lipgloss styles bound to one renderer.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Exact    lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles builds the palette for r. The renderer decides whether colors
// are emitted, so output piped to a file stays plain.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Subtitle: r.NewStyle().
			Foreground(ColorSecondary),

		Label: r.NewStyle().
			Foreground(ColorLabel).
			Bold(true),

		Value: r.NewStyle().
			Foreground(ColorAccent),

		Exact: r.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		Error: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Muted: r.NewStyle().
			Foreground(ColorMuted),
	}
}
