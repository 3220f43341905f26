package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"mlguide/internal/ui/input/types"
)

// QuickFilterMode is active while the Quick Filter button has focus. Keys
// other than the ones it handles behave as in normal mode.
type QuickFilterMode struct {
	normal *NormalMode
}

func NewQuickFilterMode(normal *NormalMode) *QuickFilterMode {
	return &QuickFilterMode{normal: normal}
}

func (m *QuickFilterMode) Name() string {
	return "quick filter"
}

func (m *QuickFilterMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *QuickFilterMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *QuickFilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace:
		return []types.Action{types.QuickFilterAction{}}, true
	case tea.KeyTab, tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	}
	return m.normal.HandleKey(msg, ctx)
}
