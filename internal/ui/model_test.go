package ui

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlguide/internal/catalog"
	"mlguide/internal/config"
	"mlguide/internal/eventbus"
	inputtypes "mlguide/internal/ui/input/types"
	"mlguide/internal/ui/views"
)

// recordingBus captures published events synchronously
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) ofType(t eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

func newTestModel(t *testing.T, bus eventbus.EventBus, mutate func(*config.Config)) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.Animations = false
	if mutate != nil {
		mutate(cfg)
	}
	m := NewModel(bus, cfg, catalog.New())
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	return m
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func visibleNames(m *Model) []string {
	var names []string
	for _, r := range m.query.Visible() {
		names = append(names, r.Name)
	}
	return names
}

// isQuit runs cmd and reports whether it asks the program to exit
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestViewBeforeResize(t *testing.T) {
	m := NewModel(nil, nil, catalog.New())
	assert.Equal(t, "Loading...", m.View())
}

func TestInitialViewShowsEverything(t *testing.T) {
	m := newTestModel(t, nil, nil)

	view := m.View()
	assert.Contains(t, view, catalog.Title)
	assert.Contains(t, view, catalog.QuickFilterLabel)
	assert.Contains(t, view, "10 models")
	assert.Len(t, m.query.Visible(), 10)
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	m := newTestModel(t, nil, nil)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())

	typeText(m, "cif")
	assert.Equal(t, "cif", m.query.Query())
	typeText(m, "ar")
	assert.Equal(t, "cifar", m.query.Query())

	assert.Equal(t, []string{"Artificial Neural Networks (ANN)", "ResNet", "DenseNet"}, visibleNames(m))

	view := m.View()
	assert.Contains(t, view, "ResNet")
	assert.Contains(t, view, `3 of 10 models match "cifar"`)
	assert.NotContains(t, view, "Support Vector Machine")
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	m := newTestModel(t, nil, nil)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeText(m, "SPAM")

	assert.Equal(t, []string{"Logistic Regression", "Naive Bayes (Gaussian / Multinomial / Bernoulli)"}, visibleNames(m))
}

func TestLetterKeysTypeWhileSearching(t *testing.T) {
	m := newTestModel(t, nil, nil)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})

	typeText(m, "q")
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	assert.Equal(t, "q", m.query.Query())
}

func TestEscKeepsQueryThenClears(t *testing.T) {
	m := newTestModel(t, nil, nil)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeText(m, "svm")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, "svm", m.query.Query())
	assert.Len(t, m.query.Visible(), 1)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.query.Query())
	assert.Len(t, m.query.Visible(), 10)
	assert.Equal(t, "", m.inputHandler.TextInput().Value())
}

func TestNoMatchKeepsTips(t *testing.T) {
	m := newTestModel(t, nil, nil)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeText(m, "zzz-no-match")

	assert.Empty(t, m.query.Visible())
	view := m.View()
	assert.Contains(t, view, catalog.CleaningHeading)
	assert.Contains(t, view, "Handle Missingness")
	assert.NotContains(t, view, "No models match")
}

func TestNoResultsLineWhenEnabled(t *testing.T) {
	m := newTestModel(t, nil, func(c *config.Config) { c.UI.ShowNoResults = true })
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeText(m, "zzz-no-match")

	assert.Contains(t, m.View(), "No models match")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, nil, nil)
	assert.True(t, isQuit(press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})))

	m = newTestModel(t, nil, nil)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.True(t, isQuit(press(m, tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t, nil, nil)
	tab := tea.KeyMsg{Type: tea.KeyTab}

	press(m, tab)
	assert.Equal(t, views.FocusSearch, m.viewState().Focus)
	press(m, tab)
	assert.Equal(t, views.FocusQuickFilter, m.viewState().Focus)
	press(m, tab)
	assert.Equal(t, views.FocusGrid, m.viewState().Focus)
}

func TestQuickFilterOnlyPublishes(t *testing.T) {
	bus := &recordingBus{}
	m := newTestModel(t, bus, nil)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeText(m, "image")
	press(m, tea.KeyMsg{Type: tea.KeyTab})

	before := visibleNames(m)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, before, visibleNames(m))
	assert.Equal(t, "image", m.query.Query())

	pressed := bus.ofType(eventbus.EventQuickFilterPressed)
	require.Len(t, pressed, 1)
	assert.Equal(t, eventbus.QuickFilterPressedEvent{Query: "image"}, pressed[0])
	assert.Len(t, bus.ofType(eventbus.EventQueryChanged), len("image"))
}

func TestColumnsFollowWidth(t *testing.T) {
	m := newTestModel(t, nil, nil)
	assert.Equal(t, 3, m.viewState().Columns)

	m.Update(tea.WindowSizeMsg{Width: 90, Height: 40})
	assert.Equal(t, 2, m.viewState().Columns)

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.Equal(t, 1, m.viewState().Columns)

	m = newTestModel(t, nil, func(c *config.Config) { c.UI.Columns = 1 })
	assert.Equal(t, 1, m.viewState().Columns)
}

func TestInitialQueryFromConfig(t *testing.T) {
	m := newTestModel(t, nil, func(c *config.Config) { c.UI.InitialQuery = "iris" })

	assert.Equal(t, "iris", m.query.Query())
	assert.Equal(t, "iris", m.inputHandler.TextInput().Value())
	assert.Equal(t, []string{"K-Nearest Neighbors (KNN)"}, visibleNames(m))
}

func TestScrolling(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	require.Greater(t, m.viewport.TotalLineCount(), m.viewport.Height)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, m.viewport.YOffset)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.True(t, m.viewport.AtBottom())

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.True(t, m.viewport.AtTop())
}

func TestToggleHelp(t *testing.T) {
	m := newTestModel(t, nil, nil)
	height := m.viewport.Height

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.viewport.Height, height)
	assert.Contains(t, m.View(), "help in pager")
}

func TestPagerWithoutProgramReportsError(t *testing.T) {
	bus := &recordingBus{}
	m := newTestModel(t, bus, nil)

	cmd := m.processAction(inputtypes.OpenPagerAction{Content: inputtypes.PagerHelp})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, pagerMsg{}, msg)
	assert.ErrorIs(t, msg.(pagerMsg).err, ErrNoProgram)

	m.Update(msg)
	assert.Len(t, bus.ofType(eventbus.EventPagerOpened), 1)

	// the failure travels through the bus and comes back as an EventMsg
	errs := bus.ofType(eventbus.EventError)
	require.Len(t, errs, 1)
	ev := errs[0].(eventbus.ErrorEvent)
	assert.Contains(t, ev.Message, "Pager failed")
	assert.ErrorIs(t, ev.Err, ErrNoProgram)

	m.Update(EventMsg{Event: ev})
	assert.Contains(t, m.View(), "Pager failed")

	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.NotContains(t, m.View(), "Pager failed")
}

func TestPagerFailureWithoutBusSetsStatus(t *testing.T) {
	m := newTestModel(t, nil, nil)

	msg := m.processAction(inputtypes.OpenPagerAction{Content: inputtypes.PagerView})()
	m.Update(msg)
	assert.Contains(t, m.View(), "Pager failed")
}

func TestStaleClearKeepsNewerStatus(t *testing.T) {
	m := newTestModel(t, nil, nil)

	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "first failure"}})
	stale := clearStatusMsg{seq: m.statusSeq}
	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "second failure"}})

	m.Update(stale)
	assert.Contains(t, m.View(), "second failure")

	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.NotContains(t, m.View(), "second failure")
}

func TestStatusShowsSearchMode(t *testing.T) {
	m := newTestModel(t, nil, nil)
	assert.NotContains(t, m.View(), "[search]")

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.Contains(t, m.View(), "[search]")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, m.View(), "[search]")
}

func TestPagerContent(t *testing.T) {
	m := newTestModel(t, nil, nil)

	help := m.pagerContent(inputtypes.PagerHelp)
	assert.Contains(t, help, "scroll down")
	assert.Contains(t, help, "open in pager")

	page := m.pagerContent(inputtypes.PagerView)
	assert.Contains(t, page, catalog.Title)
	assert.Contains(t, page, catalog.FooterTip[:20])
}

func TestErrorEventShowsStatus(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "config could not be saved"}})
	assert.Contains(t, m.View(), "config could not be saved")
}

func TestTickAdvancesAnimation(t *testing.T) {
	m := newTestModel(t, nil, func(c *config.Config) { c.UI.Animations = true })
	require.NotNil(t, m.Init())

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, cmd := m.Update(tickMsg(start))
	assert.NotNil(t, cmd)
	_, cmd = m.Update(tickMsg(start.Add(time.Second)))
	assert.NotNil(t, cmd)
	assert.Equal(t, time.Second, m.elapsed)

	m.Update(pauseRenderingMsg{})
	_, cmd = m.Update(tickMsg(start.Add(2 * time.Second)))
	assert.Nil(t, cmd)
	assert.Equal(t, time.Second, m.elapsed)
}

func TestAnimationsDisabled(t *testing.T) {
	m := newTestModel(t, nil, nil)
	assert.Nil(t, m.Init())

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)
}
