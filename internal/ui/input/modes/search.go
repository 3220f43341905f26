package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mlguide/internal/ui/input/types"
)

// SearchMode sends every keystroke to the search box
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuickFilter}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
