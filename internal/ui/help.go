package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mlguide/internal/catalog"
)

// HelpRenderer renders the key reference shown in the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// Render lays out every section as aligned key/description rows
func (r *HelpRenderer) Render(sections []keySection) string {
	keyWidth := 0
	for _, s := range sections {
		for _, b := range s.bindings {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}
	}

	var help strings.Builder
	help.WriteString(r.title.Render(catalog.Title + " Help"))
	help.WriteString("\n")

	for _, s := range sections {
		help.WriteString(r.section.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(h.Key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", r.key.Render(h.Key), pad, r.desc.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.note.Render("  Search matches any part of a model's name, best-for text, datasets and use cases, ignoring case."))
	return help.String()
}
