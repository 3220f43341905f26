package views

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Badge         lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	SearchBox     lipgloss.Style
	SearchFocused lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Card          lipgloss.Style
	CardFocused   lipgloss.Style
	IconFrame     lipgloss.Style
	Name          lipgloss.Style
	Label         lipgloss.Style
	BestFor       lipgloss.Style
	DatasetChip   lipgloss.Style
	UseCaseChip   lipgloss.Style
	Ribbon        lipgloss.Style
	Section       lipgloss.Style
	Intro         lipgloss.Style
	Tip           lipgloss.Style
	TipTitle      lipgloss.Style
	TipText       lipgloss.Style
	Footer        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
}

// NewStyles creates the default styles bound to renderer r. A nil renderer
// uses the lipgloss default.
func NewStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{
		Badge: r.NewStyle().
			Foreground(lipgloss.Color("#e2e8f0")).
			Background(lipgloss.Color("#334155")).
			Padding(0, 1),
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f8fafc")),
		Subtitle: r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		SearchBox: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1),
		SearchFocused: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#22d3ee")).
			Padding(0, 1),
		Button: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Foreground(lipgloss.Color("#cbd5e1")).
			Padding(0, 1),
		ButtonFocused: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#22d3ee")).
			Foreground(lipgloss.Color("#f8fafc")).
			Bold(true).
			Padding(0, 1),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1),
		CardFocused: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#64748b")).
			Padding(0, 1),
		IconFrame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Bold(true),
		Name:        r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f8fafc")),
		Label:       r.NewStyle().Foreground(lipgloss.Color("#64748b")),
		BestFor:     r.NewStyle().Foreground(lipgloss.Color("#cbd5e1")),
		DatasetChip: r.NewStyle().Foreground(lipgloss.Color("#e2e8f0")).Background(lipgloss.Color("#1e293b")).Padding(0, 1),
		UseCaseChip: r.NewStyle().Foreground(lipgloss.Color("#cbd5e1")).Background(lipgloss.Color("#334155")).Padding(0, 1),
		Ribbon:      r.NewStyle(),
		Section: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f8fafc")).
			MarginTop(1),
		Intro: r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		Tip: r.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#34d399")).
			PaddingLeft(1),
		TipTitle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#e2e8f0")),
		TipText:     r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		Footer:      r.NewStyle().Italic(true).Foreground(lipgloss.Color("#64748b")).MarginTop(1),
		Dim:         r.NewStyle().Faint(true),
		Status:      r.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: r.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        r.NewStyle().Faint(true),
		Main:        r.NewStyle().Padding(0, 2),
	}
}

// PlainRenderer returns a renderer that writes no color or style sequences,
// used for pager exports and `list --plain`.
func PlainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii))
	r.SetColorProfile(termenv.Ascii)
	return r
}
