package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"mlguide/internal/catalog"
	"mlguide/internal/config"
	"mlguide/internal/domain"
	"mlguide/internal/eventbus"
	"mlguide/internal/ui/input"
	inputtypes "mlguide/internal/ui/input/types"
	"mlguide/internal/ui/services/query"
	"mlguide/internal/ui/views"
)

const (
	// frameInterval drives reveal and ribbon growth
	frameInterval = 50 * time.Millisecond
	// glowInterval is enough for the slow glow once cards have settled
	glowInterval = 100 * time.Millisecond

	statusTimeout = 3 * time.Second
	minBodyHeight = 3
	minPageWidth  = 20
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	query  *query.Service
	tips   []domain.TipRecord

	width    int
	height   int
	help     help.Model
	keys     keyBindings
	viewport viewport.Model

	// animation clock, measured from the first tick
	started time.Time
	elapsed time.Duration

	statusMessage string
	statusIsError bool
	statusSeq     int // identifies the message a clearStatusMsg belongs to
	inPagerMode   bool

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over the models and tips in store
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *catalog.Store) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		query:        query.NewService(store.Models(), bus),
		tips:         store.Tips(),
		help:         help.New(),
		keys:         newKeyBindings(),
		viewport:     viewport.New(0, 0),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		pager:        NewPager(nil),
	}

	if q := cfg.UI.InitialQuery; q != "" {
		m.query.SetQuery(q)
		m.inputHandler.SetValue(q)
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if !m.config.UI.Animations {
		return nil
	}
	return tick(frameInterval)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		ctx := input.ModelContext{Service: m.query}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := m.viewState()
	styles := m.renderer.Styles()
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.RenderHeader(state),
		"",
		m.viewport.View(),
		m.renderer.RenderStatus(state, m.statusMessage, m.statusIsError),
		styles.Help.Render(m.help.View(m.currentKeys())),
	)
	return styles.Main.MaxHeight(m.height).Render(content)
}

// viewState collects what the renderer needs from the model
func (m *Model) viewState() views.ViewState {
	ti := m.inputHandler.TextInput()

	focus := views.FocusGrid
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		focus = views.FocusSearch
	case inputtypes.ModeQuickFilter:
		focus = views.FocusQuickFilter
	}

	return views.ViewState{
		Width:         m.pageWidth(),
		Height:        m.height,
		SearchInput:   ti.View(),
		Query:         m.query.Query(),
		Focus:         focus,
		Visible:       m.query.Visible(),
		Total:         m.query.Total(),
		Tips:          m.tips,
		Mode:          m.inputHandler.ModeName(),
		Columns:       views.Columns(m.width, m.config.UI.Columns),
		ShowTips:      m.config.UI.ShowTips,
		ShowFooter:    m.config.UI.ShowFooter,
		ShowNoResults: m.config.UI.ShowNoResults,
		Frame:         views.Frame{Enabled: m.config.UI.Animations, Elapsed: m.elapsed},
	}
}

// pageWidth is the terminal width minus the main container padding
func (m *Model) pageWidth() int {
	return max(m.width-4, minPageWidth)
}

// layout sizes the search box and the scrolling body around the header
// and status lines, then re-renders the body
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	m.inputHandler.SetWidth(max(min(m.pageWidth()-20, 60)-6, 10))

	state := m.viewState()
	headerHeight := lipgloss.Height(m.renderer.RenderHeader(state))
	footerHeight := 1 + lipgloss.Height(m.help.View(m.currentKeys()))

	m.viewport.Width = state.Width
	m.viewport.Height = max(m.height-headerHeight-1-footerHeight, minBodyHeight)
	m.refreshContent()
}

// refreshContent re-renders the scrolling body
func (m *Model) refreshContent() {
	if m.width == 0 {
		return
	}
	m.viewport.SetContent(m.renderer.RenderBody(m.viewState()))
}

func (m *Model) currentKeys() modeKeys {
	return m.keys.forMode(m.inputHandler.CurrentMode())
}

// setQuery applies q and re-renders when it differs from the current query
func (m *Model) setQuery(q string) {
	if q == m.query.Query() {
		return
	}
	visible := m.query.SetQuery(q)
	log.Debug().Str("query", q).Int("matches", len(visible)).Msg("query changed")
	m.refreshContent()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		log.Info().Bool("force", a.Force).Msg("quit requested")
		return tea.Quit

	case inputtypes.ScrollAction:
		m.scroll(a.Direction)

	case inputtypes.ChangeModeAction:
		// focus styles and help keys depend on the mode
		m.layout()

	case inputtypes.UpdateTextAction:
		m.setQuery(a.Text)

	case inputtypes.SubmitTextAction:
		m.setQuery(a.Text)

	case inputtypes.ClearQueryAction:
		m.inputHandler.SetValue("")
		m.setQuery("")

	case inputtypes.QuickFilterAction:
		// The button has no filtering behavior of its own
		if m.bus != nil {
			m.bus.Publish(eventbus.QuickFilterPressedEvent{Query: m.query.Query()})
		}

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case inputtypes.OpenPagerAction:
		return m.openPager(a.Content)
	}
	return nil
}

func (m *Model) scroll(direction string) {
	vp := &m.viewport
	switch direction {
	case "up":
		vp.SetYOffset(vp.YOffset - 1)
	case "down":
		vp.SetYOffset(vp.YOffset + 1)
	case "pageup":
		vp.SetYOffset(vp.YOffset - vp.Height)
	case "pagedown":
		vp.SetYOffset(vp.YOffset + vp.Height)
	case "halfup":
		vp.SetYOffset(vp.YOffset - vp.Height/2)
	case "halfdown":
		vp.SetYOffset(vp.YOffset + vp.Height/2)
	case "home":
		vp.GotoTop()
	case "end":
		vp.GotoBottom()
	}
}

// pagerContent renders what the pager shows for content
func (m *Model) pagerContent(content inputtypes.PagerContent) string {
	if content == inputtypes.PagerHelp {
		return m.helpRenderer.Render(m.keys.sections())
	}
	state := m.viewState()
	state.SearchInput = ""
	state.Focus = views.FocusGrid
	state.Frame = views.Frame{}
	return m.renderer.Render(state)
}

// openPager returns a command that shows content in the ov pager
func (m *Model) openPager(content inputtypes.PagerContent) tea.Cmd {
	text := m.pagerContent(content)
	if m.bus != nil {
		m.bus.Publish(eventbus.PagerOpenedEvent{Content: string(content)})
	}

	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}

		err := m.pager.Show(text)

		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{content: content, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode || !m.config.UI.Animations {
			return m, nil
		}
		now := time.Time(msg)
		if m.started.IsZero() {
			m.started = now
		}
		m.elapsed = now.Sub(m.started)
		m.refreshContent()

		frame := views.Frame{Enabled: true, Elapsed: m.elapsed}
		if frame.Settled(m.query.Total()) {
			return m, tick(glowInterval)
		}
		return m, tick(frameInterval)

	case pagerMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Str("content", string(msg.content)).Msg("pager failed")
			return m, m.reportError(fmt.Sprintf("Pager failed: %v", msg.err), msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.config.UI.Animations {
			return m, tick(frameInterval)
		}
		return m, nil

	case clearStatusMsg:
		// a newer message restarted the timer
		if msg.seq != m.statusSeq {
			return m, nil
		}
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	case EventMsg:
		if ev, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus(ev.Message, true)
		}
		return m, nil

	default:
		return m, nil
	}
}

// setStatus shows message in the status line until statusTimeout passes
func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.statusMessage = message
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// reportError publishes an ErrorEvent, which comes back as an EventMsg and
// sets the status line. Without a bus the status is set directly.
func (m *Model) reportError(message string, err error) tea.Cmd {
	if m.bus == nil {
		return m.setStatus(message, true)
	}
	m.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	return nil
}

// tick returns a command that sends a tick message after d
func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
