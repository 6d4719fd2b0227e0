package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"citysearch/internal/ui/input/types"
)

// QueryMode is active while the user types into the search input. Keys it
// does not consume go to the text input.
type QueryMode struct{}

func NewQueryMode() *QueryMode {
	return &QueryMode{}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusInputAction{}}
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyEsc:
		return []types.Action{
			types.DismissListAction{},
			types.ChangeModeAction{Mode: types.ModeBlurred},
		}, true

	case tea.KeyTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBlurred}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		if !ctx.ListVisible() {
			return []types.Action{types.RevealListAction{}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyEnter:
		if ctx.HasCursorSuggestion() {
			return []types.Action{types.ChooseAction{}}, true
		}
		return nil, true
	}

	return nil, false
}
