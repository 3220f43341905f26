package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mlguide/internal/ui/input/types"
)

// doubleTapWindow is how quickly the second g of gg must follow the first
const doubleTapWindow = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc clears an active query; otherwise it does nothing
		if ctx.Query() != "" {
			return []types.Action{types.ClearQueryAction{}}, true
		}
		return nil, false

	case tea.KeyTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuickFilter}}, true

	case tea.KeyUp:
		return scroll("up"), true

	case tea.KeyDown:
		return scroll("down"), true

	case tea.KeyPgUp:
		return scroll("pageup"), true

	case tea.KeyPgDown:
		return scroll("pagedown"), true

	case tea.KeyHome:
		return scroll("home"), true

	case tea.KeyEnd:
		return scroll("end"), true

	case tea.KeyCtrlU:
		return scroll("halfup"), true

	case tea.KeyCtrlD:
		return scroll("halfdown"), true
	}

	switch key {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "j":
		return scroll("down"), true

	case "k":
		return scroll("up"), true

	case " ", "f":
		return scroll("pagedown"), true

	case "b":
		return scroll("pageup"), true

	case "g":
		// gg jumps to the top
		now := time.Now()
		if m.lastKeyWasG && now.Sub(m.lastGTime) < doubleTapWindow {
			m.lastKeyWasG = false
			return scroll("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = now
		return nil, true

	case "G":
		return scroll("end"), true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "p":
		return []types.Action{types.OpenPagerAction{Content: types.PagerView}}, true

	case "H":
		return []types.Action{types.OpenPagerAction{Content: types.PagerHelp}}, true
	}

	return nil, false
}

func scroll(direction string) []types.Action {
	return []types.Action{types.ScrollAction{Direction: direction}}
}
