package types

// Scroll actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "halfup", "halfdown", "home", "end"
}

func (a ScrollAction) Type() string { return "scroll" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// QuickFilterAction is sent when the Quick Filter button is pressed
type QuickFilterAction struct{}

func (a QuickFilterAction) Type() string { return "quick_filter" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// PagerContent selects what OpenPagerAction shows
type PagerContent string

const (
	PagerView PagerContent = "view"
	PagerHelp PagerContent = "help"
)

type OpenPagerAction struct {
	Content PagerContent
}

func (a OpenPagerAction) Type() string { return "open_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
