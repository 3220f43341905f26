package ui

import (
	"time"

	"mlguide/internal/eventbus"
	inputtypes "mlguide/internal/ui/input/types"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// pagerMsg contains the result of a pager session
type pagerMsg struct {
	content inputtypes.PagerContent
	err     error
}

// clearStatusMsg clears the status line if it still shows message seq
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has exited
type resumeRenderingMsg struct{}
