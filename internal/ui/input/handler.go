package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"citysearch/internal/ui/input/modes"
	"citysearch/internal/ui/input/types"
)

// Handler routes keys to the active mode and owns the search text input
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = "Type a city name"

	h := &Handler{
		currentMode: types.ModeBlurred,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeBlurred] = modes.NewBlurredMode()
	h.modes[types.ModeQuery] = modes.NewQueryMode()
	h.modes[types.ModeModal] = modes.NewModalMode()

	return h
}

// HandleKey runs msg through the current mode. Mode changes requested by
// the mode are applied here and their enter/exit actions are returned along
// with the rest.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmds []tea.Cmd
	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			modeActions, cmd := h.SwitchMode(changeMode.Mode, ctx)
			allActions = append(allActions, modeActions...)
			cmds = append(cmds, cmd)
			continue
		}
		allActions = append(allActions, action)
	}

	// Unconsumed keys in query mode edit the text
	if !consumed && h.currentMode == types.ModeQuery {
		before := h.textInput.Value()
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		cmds = append(cmds, cmd)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, tea.Batch(cmds...)
}

// SwitchMode leaves the current mode and enters mode
func (h *Handler) SwitchMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	var cmd tea.Cmd
	if mode == types.ModeQuery {
		h.textInput.CursorEnd()
		cmd = h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
	return actions, cmd
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeQuery {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// SetText replaces the input text without emitting an update
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

func (h *Handler) Text() string {
	return h.textInput.Value()
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// TextInput returns the text input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}
