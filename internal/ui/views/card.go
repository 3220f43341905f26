package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mlguide/internal/domain"
	"mlguide/internal/theme"
)

const (
	ribbonCell = "━"
	gridGap    = 1
	// cards narrower than this wrap too aggressively to read
	minCardWidth = 28
)

// CardRenderer handles model and tip card rendering
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// Columns picks the grid column count. A configured value wins; otherwise 1
// below 70 terminal columns, 2 below 110, 3 above.
func Columns(termWidth, configured int) int {
	if configured > 0 {
		return configured
	}
	switch {
	case termWidth < 70:
		return 1
	case termWidth < 110:
		return 2
	default:
		return 3
	}
}

// RenderGrid lays out one card per model, left to right, top to bottom, in
// the order given
func (cr *CardRenderer) RenderGrid(models []domain.ModelRecord, width, columns int, frame Frame) string {
	if len(models) == 0 {
		return ""
	}
	columns, cardWidth := fitColumns(width, columns)

	bodies := make([]string, len(models))
	for i, m := range models {
		bodies[i] = cr.modelBody(m, i, cardWidth-4, frame)
	}

	var rows []string
	for start := 0; start < len(bodies); start += columns {
		end := min(start+columns, len(bodies))
		height := 0
		for _, b := range bodies[start:end] {
			height = max(height, lipgloss.Height(b))
		}

		cells := make([]string, 0, columns*2)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", gridGap))
			}
			body := bodies[i]
			if !frame.Revealed(i) {
				body = ""
			}
			cells = append(cells, cr.styles.Card.Width(cardWidth-2).Height(height).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// RenderModelCard renders a single card of the given outer width
func (cr *CardRenderer) RenderModelCard(m domain.ModelRecord, index, width int, frame Frame) string {
	width = max(width, minCardWidth)
	return cr.styles.Card.Width(width - 2).Render(cr.modelBody(m, index, width-4, frame))
}

// modelBody renders the card content for an inner width of inner cells
func (cr *CardRenderer) modelBody(m domain.ModelRecord, index, inner int, frame Frame) string {
	palette := theme.Accent(m.Accent)
	s := cr.styles

	glow := palette.From
	if frame.Enabled {
		glow = palette.Pulse(frame.GlowOpacity())
	}
	icon := s.IconFrame.
		BorderForeground(lipgloss.Color(glow)).
		Foreground(lipgloss.Color(palette.From)).
		Render(theme.Glyph(m.Icon))

	nameWidth := max(inner-lipgloss.Width(icon)-1, 8)
	name := s.Name.Width(nameWidth).Render(m.Name)
	head := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", name)

	parts := []string{
		head,
		"",
		s.Label.Render("Best for"),
		s.BestFor.Width(inner).Render(m.BestFor),
		"",
		s.Label.Render("Datasets"),
		wrapChips(chipList(s.DatasetChip, m.Datasets), inner),
		"",
		s.Label.Render("Use cases"),
		wrapChips(chipList(s.UseCaseChip, m.UseCases), inner),
		"",
		cr.ribbon(palette, inner, frame.RibbonScale(index)),
	}
	return strings.Join(parts, "\n")
}

// ribbon draws the accent gradient scaled to a fraction of width
func (cr *CardRenderer) ribbon(p theme.Palette, width int, scale float64) string {
	cells := int(math.Round(float64(width) * scale))
	if cells <= 0 {
		return ""
	}
	var b strings.Builder
	for _, hex := range p.Gradient(cells) {
		b.WriteString(cr.styles.Ribbon.Foreground(lipgloss.Color(hex)).Render(ribbonCell))
	}
	return b.String()
}

// RenderTipCard renders one data cleaning tip
func (cr *CardRenderer) RenderTipCard(t domain.TipRecord, width int) string {
	inner := max(width-2, 10)
	return cr.styles.Tip.Width(width - 1).Render(
		cr.styles.TipTitle.Render(t.Title) + "\n" + cr.styles.TipText.Width(inner).Render(t.Text),
	)
}

// RenderTips lays the tips out in up to two columns
func (cr *CardRenderer) RenderTips(tips []domain.TipRecord, width int) string {
	if len(tips) == 0 {
		return ""
	}
	columns := 1
	if width >= 70 {
		columns = 2
	}
	columns, tipWidth := fitColumns(width, columns)

	var rows []string
	for start := 0; start < len(tips); start += columns {
		end := min(start+columns, len(tips))
		cells := make([]string, 0, columns*2)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", gridGap))
			}
			cells = append(cells, cr.RenderTipCard(tips[i], tipWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n\n")
}

// fitColumns drops columns until each card is at least minCardWidth wide
func fitColumns(width, columns int) (int, int) {
	columns = max(columns, 1)
	for columns > 1 && (width-gridGap*(columns-1))/columns < minCardWidth {
		columns--
	}
	return columns, max((width-gridGap*(columns-1))/columns, minCardWidth)
}

func chipList(style lipgloss.Style, labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = style.Render(l)
	}
	return out
}

// wrapChips joins chips with a space, starting a new line when the next chip
// would overflow width
func wrapChips(chips []string, width int) string {
	var lines []string
	line := ""
	for _, c := range chips {
		switch {
		case line == "":
			line = c
		case lipgloss.Width(line)+1+lipgloss.Width(c) > width:
			lines = append(lines, line)
			line = c
		default:
			line += " " + c
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
