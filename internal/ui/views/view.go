package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mlguide/internal/catalog"
	"mlguide/internal/domain"
)

// Focus identifies the header element that currently receives input
type Focus int

const (
	FocusGrid Focus = iota
	FocusSearch
	FocusQuickFilter
)

const (
	searchIcon      = "⌕"
	quickFilterIcon = "⧩"
	badgeIcon       = "✦"
	maxSearchWidth  = 60
	maxTextWidth    = 100
	noResultsLine   = "No models match"
)

// ViewState contains all the data needed to render the page
type ViewState struct {
	Width  int
	Height int

	// SearchInput is the rendered text input. When empty the query is
	// rendered statically, as in exports.
	SearchInput string
	Query       string
	Focus       Focus
	Mode        string // input mode name, shown in the status line unless "normal"

	Visible []domain.ModelRecord
	Total   int
	Tips    []domain.TipRecord

	Columns       int // 0 picks from Width
	ShowTips      bool
	ShowFooter    bool
	ShowNoResults bool
	Frame         Frame
}

// Renderer handles rendering of the UI
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
}

// NewRenderer creates a new renderer with the default styles
func NewRenderer() *Renderer {
	return NewRendererWithStyles(NewStyles(nil))
}

// NewRendererWithStyles creates a renderer using styles
func NewRendererWithStyles(styles *Styles) *Renderer {
	return &Renderer{
		styles:     styles,
		cardRender: NewCardRenderer(styles),
	}
}

// Styles returns the styles used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render renders the whole page, header included. The interactive UI renders
// header and body separately so only the body scrolls.
func (r *Renderer) Render(state ViewState) string {
	return r.RenderHeader(state) + "\n\n" + r.RenderBody(state)
}

// RenderHeader renders badge, title, subtitle and the search row
func (r *Renderer) RenderHeader(state ViewState) string {
	width := pageWidth(state.Width)
	textWidth := min(width, maxTextWidth)

	lines := []string{
		r.styles.Badge.Render(badgeIcon + " " + catalog.Badge),
		"",
		r.styles.Title.Width(textWidth).Render(catalog.Title),
		r.styles.Subtitle.Width(textWidth).Render(catalog.Subtitle),
		"",
		r.renderSearchRow(state, width),
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderSearchRow(state ViewState, width int) string {
	buttonStyle := r.styles.Button
	if state.Focus == FocusQuickFilter {
		buttonStyle = r.styles.ButtonFocused
	}
	button := buttonStyle.Render(quickFilterIcon + " " + catalog.QuickFilterLabel)

	input := state.SearchInput
	if input == "" {
		if state.Query == "" {
			input = r.styles.Dim.Render(catalog.SearchPlaceholder)
		} else {
			input = state.Query
		}
	}

	boxStyle := r.styles.SearchBox
	if state.Focus == FocusSearch {
		boxStyle = r.styles.SearchFocused
	}
	// border and padding take four cells
	boxWidth := min(width-lipgloss.Width(button)-1, maxSearchWidth) - 2
	box := boxStyle.Width(max(boxWidth, 20)).Render(searchIcon + " " + input)

	if lipgloss.Width(box)+1+lipgloss.Width(button) > width {
		return lipgloss.JoinVertical(lipgloss.Left, box, button)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, box, " ", button)
}

// RenderBody renders the model grid, the data cleaning tips and the footer
func (r *Renderer) RenderBody(state ViewState) string {
	width := pageWidth(state.Width)
	columns := Columns(state.Width, state.Columns)

	var sections []string
	if grid := r.cardRender.RenderGrid(state.Visible, width, columns, state.Frame); grid != "" {
		sections = append(sections, grid)
	} else if state.ShowNoResults {
		sections = append(sections, r.styles.Dim.Render(noResultsLine))
	}

	if state.ShowTips {
		textWidth := min(width, maxTextWidth)
		sections = append(sections,
			r.styles.Section.Render(catalog.CleaningHeading)+"\n"+
				r.styles.Intro.Width(textWidth).Render(catalog.CleaningIntro),
			r.cardRender.RenderTips(state.Tips, width),
		)
	}

	if state.ShowFooter {
		sections = append(sections, r.styles.Footer.Width(min(width, maxTextWidth)).Render(catalog.FooterTip))
	}
	return strings.Join(sections, "\n\n")
}

// RenderStatus renders the one line summary shown under the body. A non-empty
// message replaces the match count.
func (r *Renderer) RenderStatus(state ViewState, message string, isError bool) string {
	if message != "" {
		if isError {
			return r.styles.StatusError.Render(message)
		}
		return r.styles.Status.Render(message)
	}
	summary := MatchSummary(state.Query, len(state.Visible), state.Total)
	if state.Mode != "" && state.Mode != "normal" {
		summary = "[" + state.Mode + "] " + summary
	}
	return r.styles.Status.Render(summary)
}

// MatchSummary describes how many models the query matched
func MatchSummary(query string, matched, total int) string {
	if query == "" {
		return fmt.Sprintf("%d models", total)
	}
	return fmt.Sprintf("%d of %d models match %q", matched, total, query)
}

func pageWidth(width int) int {
	if width <= 0 {
		return 80
	}
	return width
}
