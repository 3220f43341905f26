package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "mlguide/internal/ui/input/types"
)

// keySection is a titled group of bindings in the full help
type keySection struct {
	title    string
	bindings []key.Binding
}

// modeKeys implements help.KeyMap for one input mode
type modeKeys struct {
	short    []key.Binding
	sections []keySection
}

func (k modeKeys) ShortHelp() []key.Binding {
	return k.short
}

func (k modeKeys) FullHelp() [][]key.Binding {
	groups := make([][]key.Binding, len(k.sections))
	for i, s := range k.sections {
		groups[i] = s.bindings
	}
	return groups
}

// keyBindings documents the keys the input modes handle
type keyBindings struct {
	Search    key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Clear     key.Binding
	Done      key.Binding
	Press     key.Binding
	Pager     key.Binding
	HelpPager key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyBindings() keyBindings {
	return keyBindings{
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next focus")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous focus")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "b", "ctrl+u"), key.WithHelp("pgup/b", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "f", " ", "ctrl+d"), key.WithHelp("pgdn/f", "page down")),
		Top:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("gg/home", "top")),
		Bottom:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Done:      key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),
		Press:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Pager:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "open in pager")),
		HelpPager: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// sections lists every binding grouped for the full help and the help pager
func (k keyBindings) sections() []keySection {
	return []keySection{
		{title: "Scrolling", bindings: []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom}},
		{title: "Search", bindings: []key.Binding{k.Search, k.Done, k.Clear, k.FocusNext, k.FocusPrev}},
		{title: "Other", bindings: []key.Binding{k.Pager, k.HelpPager, k.Help, k.Quit, k.ForceQuit}},
	}
}

// forMode returns the help key map shown while mode is active
func (k keyBindings) forMode(mode inputtypes.Mode) modeKeys {
	switch mode {
	case inputtypes.ModeSearch:
		return modeKeys{
			short:    []key.Binding{k.Done, k.FocusNext, k.ForceQuit},
			sections: []keySection{{title: "Search", bindings: []key.Binding{k.Done, k.FocusNext, k.FocusPrev, k.ForceQuit}}},
		}
	case inputtypes.ModeQuickFilter:
		return modeKeys{
			short:    []key.Binding{k.Press, k.FocusNext, k.Search, k.Quit},
			sections: k.sections(),
		}
	default:
		return modeKeys{
			short:    []key.Binding{k.Search, k.Down, k.Up, k.Pager, k.Help, k.Quit},
			sections: k.sections(),
		}
	}
}
