package views

import "time"

const (
	// GlowPeriod is one full 0.4 -> 0.9 -> 0.4 opacity cycle of the icon glow
	GlowPeriod = 3200 * time.Millisecond
	// RibbonGrowth is how long an accent ribbon takes to reach full width
	RibbonGrowth = 600 * time.Millisecond
	// StaggerStep delays each card's reveal by its index
	StaggerStep = 20 * time.Millisecond

	glowMin = 0.4
	glowMax = 0.9
)

// Frame is the animation clock handed to the renderer. The zero value renders
// everything fully settled with no glow.
type Frame struct {
	Enabled bool
	Elapsed time.Duration
}

// GlowOpacity returns the glow opacity at this frame
func (f Frame) GlowOpacity() float64 {
	if !f.Enabled {
		return glowMax
	}
	phase := float64(f.Elapsed%GlowPeriod) / float64(GlowPeriod)
	if phase < 0.5 {
		return glowMin + (glowMax-glowMin)*phase*2
	}
	return glowMax - (glowMax-glowMin)*(phase-0.5)*2
}

// Revealed reports whether the card at index has appeared yet
func (f Frame) Revealed(index int) bool {
	if !f.Enabled {
		return true
	}
	return f.Elapsed >= StaggerStep*time.Duration(index)
}

// RibbonScale returns the fraction of the ribbon drawn for the card at index
func (f Frame) RibbonScale(index int) float64 {
	if !f.Enabled {
		return 1
	}
	t := f.Elapsed - StaggerStep*time.Duration(index)
	if t <= 0 {
		return 0
	}
	if t >= RibbonGrowth {
		return 1
	}
	return float64(t) / float64(RibbonGrowth)
}

// Settled reports whether reveal and ribbon growth are finished for count
// cards. The glow keeps cycling afterwards.
func (f Frame) Settled(count int) bool {
	if !f.Enabled || count == 0 {
		return true
	}
	return f.RibbonScale(count-1) >= 1
}
