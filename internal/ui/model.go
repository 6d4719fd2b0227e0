package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"citysearch/internal/citydata"
	"citysearch/internal/config"
	"citysearch/internal/domain"
	"citysearch/internal/eventbus"
	"citysearch/internal/logging"
	"citysearch/internal/logic"
	"citysearch/internal/ui/input"
	inputtypes "citysearch/internal/ui/input/types"
	"citysearch/internal/ui/state"
	"citysearch/internal/ui/views"
)

var (
	uiLog    = logging.ForComponent(logging.CompUI)
	storeLog = logging.ForComponent(logging.CompStore)
)

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	store    logic.SuggestionStore
	source   citydata.Source
	resolver citydata.Resolver

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        keyMap
	spinner     spinner.Model
	spinning    bool
	layout      views.Layout // where the last frame drew each region
	inPagerMode bool

	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Work started by the model stops when
// ctx is cancelled; late results are dropped.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, store logic.SuggestionStore, source citydata.Source, resolver citydata.Resolver) *Model {
	keys := newKeyMap()
	m := &Model{
		ctx:          ctx,
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(),
		store:        store,
		source:       source,
		resolver:     resolver,
		help:         help.New(),
		keys:         keys,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(keys),
		helpOps:      NewHelpOps(nil),
	}
	m.state.Loading = true
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init starts the store load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadSuggestions(), m.startSpinner())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if w := views.InnerWidth(msg.Width) - views.PromptWidth() - 1; w > 0 {
			m.inputHandler.TextInput().Width = w
		}
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			m.state.ShowHelp = false
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)
		return m, tea.Batch(cmd, m.processActions(actions))

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m, m.handleClick(msg.X, msg.Y)

	case suggestionsLoadedMsg:
		return m, m.handleLoaded(msg)

	case selectionResolvedMsg:
		return m, m.handleResolved(msg)

	case spinner.TickMsg:
		if !m.busy() || m.inPagerMode {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the built-in overlay
			uiLog.Warn("help pager failed", slog.String("error", msg.err.Error()))
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.startSpinner()

	default:
		// cursor blink and friends
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	st := m.state
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Query:         st.Query,
		InputView:     m.inputHandler.TextInput().View(),
		InputFocused:  m.inputHandler.CurrentMode() == inputtypes.ModeQuery,
		Items:         st.Filtered,
		Cursor:        st.Cursor,
		ListVisible:   st.ListVisible,
		MaxVisible:    m.config.UISettings.MaxVisible,
		ErrorMessage:  st.ErrorMessage,
		Detail:        st.Detail,
		Loading:       st.Loading,
		LoadedCount:   st.LoadedCount,
		Resolving:     st.Resolving,
		ResolvingCity: st.Resolved,
		Spinner:       m.spinner.View(),
		ShowHelp:      st.ShowHelp,
		HelpView:      m.help.ShortHelpView(m.keys.shortHelp(m.inputHandler.CurrentMode())),
	}
	if st.ShowHelp {
		vs.HelpContent = m.helpRenderer.RenderHelpContent()
	}

	out, layout := m.renderer.Render(vs)
	m.layout = layout
	return out
}

// loadSuggestions fetches the data set once at startup
func (m *Model) loadSuggestions() tea.Cmd {
	source := m.source
	ctx := m.ctx
	return func() tea.Msg {
		items, err := source.Load(ctx)
		return suggestionsLoadedMsg{items: items, err: err}
	}
}

func (m *Model) handleLoaded(msg suggestionsLoadedMsg) tea.Cmd {
	m.state.Loading = false
	if msg.err != nil {
		// the store stays empty and the user is not told
		storeLog.Error("suggestion load failed",
			slog.String("source", m.source.Name()),
			slog.String("kind", citydata.Kind(msg.err)),
			slog.String("error", msg.err.Error()))
		m.publish(eventbus.StoreLoadFailedEvent{Err: msg.err})
		return nil
	}

	m.store.Replace(msg.items)
	m.state.LoadedCount = m.store.Len()
	wasVisible := m.state.ListVisible
	m.state.Refresh(m.store.All())
	if !wasVisible && m.state.ListVisible {
		m.publish(eventbus.ListShownEvent{Query: m.state.Query, Count: len(m.state.Filtered)})
	}
	m.publish(eventbus.StoreLoadedEvent{Count: m.state.LoadedCount})
	return nil
}

// choose starts resolving s
func (m *Model) choose(s domain.Suggestion) tea.Cmd {
	seq, ok := m.state.BeginSelect(s)
	if !ok {
		return nil
	}
	m.inputHandler.SetText(s.City)

	resolver := m.resolver
	ctx := m.ctx
	resolve := func() tea.Msg {
		detail, err := resolver.Resolve(ctx, s)
		return selectionResolvedMsg{seq: seq, city: s.City, detail: detail, err: err}
	}
	return tea.Batch(resolve, m.startSpinner())
}

func (m *Model) handleResolved(msg selectionResolvedMsg) tea.Cmd {
	if !m.state.ApplyResolution(msg.seq, msg.detail, msg.err) {
		uiLog.Debug("dropping stale resolution", slog.String("city", msg.city), slog.Uint64("seq", msg.seq))
		return nil
	}

	if msg.err != nil || msg.detail == nil {
		err := msg.err
		if err == nil {
			err = &citydata.NoMatchError{City: msg.city}
		}
		uiLog.Warn("selection not resolved",
			slog.String("city", msg.city),
			slog.String("kind", citydata.Kind(err)),
			slog.String("error", err.Error()))
		m.publish(eventbus.SelectionFailedEvent{City: msg.city, Err: err})
		return nil
	}

	m.publish(eventbus.SelectionOpenedEvent{Detail: *msg.detail})
	return m.switchMode(inputtypes.ModeModal)
}

// handleClick routes a left click using the layout of the last frame
func (m *Model) handleClick(x, y int) tea.Cmd {
	if m.state.ShowHelp {
		m.state.ShowHelp = false
		return nil
	}

	if m.state.ModalVisible() {
		if m.layout.Close.Contains(x, y) {
			m.closeModal()
			return m.switchMode(inputtypes.ModeQuery)
		}
		return nil
	}

	if m.layout.Input.Contains(x, y) {
		return m.switchMode(inputtypes.ModeQuery)
	}

	if idx, ok := m.layout.RowAt(x, y); ok && idx < len(m.state.Filtered) {
		m.state.Cursor = idx
		return m.choose(m.state.Filtered[idx])
	}

	if m.layout.List.Contains(x, y) {
		return nil
	}

	m.dismissList()
	return nil
}

// switchMode changes the input mode and applies the resulting actions
func (m *Model) switchMode(mode inputtypes.Mode) tea.Cmd {
	ctx := &input.ModelContext{State: m.state}
	actions, cmd := m.inputHandler.SwitchMode(mode, ctx)
	return tea.Batch(cmd, m.processActions(actions))
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.FocusInputAction:
		if m.state.Focus(m.store.All()) {
			m.publish(eventbus.ListShownEvent{Query: m.state.Query, Count: len(m.state.Filtered)})
		}

	case inputtypes.UpdateTextAction:
		wasVisible := m.state.ListVisible
		m.state.SetQuery(m.store.All(), a.Text)
		if !wasVisible && m.state.ListVisible {
			m.publish(eventbus.ListShownEvent{Query: m.state.Query, Count: len(m.state.Filtered)})
		}

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ChooseAction:
		if s, ok := m.state.CursorSuggestion(); ok {
			return m.choose(s)
		}

	case inputtypes.DismissListAction:
		m.dismissList()

	case inputtypes.RevealListAction:
		if m.state.RevealList() {
			m.publish(eventbus.ListShownEvent{Query: m.state.Query, Count: len(m.state.Filtered)})
		}

	case inputtypes.CloseModalAction:
		m.closeModal()

	case inputtypes.ShowHelpAction:
		return m.showHelp()

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		uiLog.Debug("unhandled action", slog.String("type", action.Type()))
	}
	return nil
}

func (m *Model) navigate(direction string) {
	page := m.config.UISettings.MaxVisible
	switch direction {
	case "up":
		m.state.MoveCursor(-1)
	case "down":
		m.state.MoveCursor(1)
	case "pageup":
		m.state.MoveCursor(-page)
	case "pagedown":
		m.state.MoveCursor(page)
	case "home":
		m.state.MoveCursor(-len(m.state.Filtered))
	case "end":
		m.state.MoveCursor(len(m.state.Filtered))
	}
}

func (m *Model) dismissList() {
	if m.state.DismissList() {
		m.publish(eventbus.ListDismissedEvent{})
	}
}

func (m *Model) closeModal() {
	if m.state.Detail == nil {
		return
	}
	city := m.state.Detail.City
	if m.state.CloseModal() {
		m.publish(eventbus.SelectionClosedEvent{City: city})
	}
}

// showHelp opens the help in the ov pager, or in an overlay when there
// is no terminal to hand over
func (m *Model) showHelp() tea.Cmd {
	if m.program == nil {
		m.state.ShowHelp = true
		return nil
	}
	content := m.helpRenderer.RenderHelpContent()
	program := m.program
	helpOps := m.helpOps
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := helpOps.ShowHelpInPager(content)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) busy() bool {
	return m.state.Loading || m.state.Resolving
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.busy() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
