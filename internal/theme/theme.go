// Package theme resolves the symbolic icon and accent references carried by
// catalog records into concrete glyphs and colors.
package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"mlguide/internal/domain"
)

// Palette is a two-stop gradient
type Palette struct {
	From string // hex, e.g. "#22d3ee"
	To   string
}

// fallback is used for references missing from the tables
var fallback = Palette{From: "#94a3b8", To: "#cbd5e1"} // slate

// 400 shades of the Tailwind palette
const (
	cyan    = "#22d3ee"
	emerald = "#34d399"
	violet  = "#a78bfa"
	indigo  = "#818cf8"
	fuchsia = "#e879f9"
	purple  = "#c084fc"
	rose    = "#fb7185"
	orange  = "#fb923c"
	teal    = "#2dd4bf"
	sky     = "#38bdf8"
	amber   = "#fbbf24"
	lime    = "#a3e635"
	green   = "#4ade80"
)

var accents = map[domain.AccentRef]Palette{
	domain.AccentCyanEmerald:   {From: cyan, To: emerald},
	domain.AccentVioletIndigo:  {From: violet, To: indigo},
	domain.AccentFuchsiaPurple: {From: fuchsia, To: purple},
	domain.AccentRoseOrange:    {From: rose, To: orange},
	domain.AccentEmeraldTeal:   {From: emerald, To: teal},
	domain.AccentSkyCyan:       {From: sky, To: cyan},
	domain.AccentAmberRose:     {From: amber, To: rose},
	domain.AccentLimeEmerald:   {From: lime, To: emerald},
	domain.AccentGreenCyan:     {From: green, To: cyan},
	domain.AccentIndigoSky:     {From: indigo, To: sky},
}

var glyphs = map[domain.IconRef]string{
	domain.IconBrain:    "◉",
	domain.IconLayers:   "≡",
	domain.IconNetwork:  "⋈",
	domain.IconRepeat:   "↻",
	domain.IconListTree: "⋮",
	domain.IconSigma:    "Σ",
	domain.IconGrid:     "▦",
	domain.IconBook:     "▤",
	domain.IconTrees:    "♣",
	domain.IconScanLine: "⌗",
}

// Accent returns the palette for ref
func Accent(ref domain.AccentRef) Palette {
	if p, ok := accents[ref]; ok {
		return p
	}
	return fallback
}

// Glyph returns a single-cell symbol for ref
func Glyph(ref domain.IconRef) string {
	if g, ok := glyphs[ref]; ok {
		return g
	}
	return "•"
}

// Gradient returns n hex colors evenly spaced from p.From to p.To, blended in
// the Lab space.
func (p Palette) Gradient(n int) []string {
	if n <= 0 {
		return nil
	}
	from, to := p.colors()
	if n == 1 {
		return []string{from.Hex()}
	}

	out := make([]string, n)
	out[0], out[n-1] = from.Hex(), to.Hex()
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		out[i] = from.BlendLab(to, t).Clamped().Hex()
	}
	return out
}

// Pulse returns the palette midpoint at the given opacity over a white
// background; it drives the glow animation.
func (p Palette) Pulse(opacity float64) string {
	from, to := p.colors()
	mid := from.BlendLab(to, 0.5)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return white.BlendRgb(mid, clamp(opacity)).Clamped().Hex()
}

func (p Palette) colors() (colorful.Color, colorful.Color) {
	from, err := colorful.Hex(p.From)
	if err != nil {
		from, _ = colorful.Hex(fallback.From)
	}
	to, err := colorful.Hex(p.To)
	if err != nil {
		to, _ = colorful.Hex(fallback.To)
	}
	return from, to
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
