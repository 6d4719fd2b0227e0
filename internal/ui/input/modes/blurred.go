package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"citysearch/internal/ui/input/types"
)

// BlurredMode handles keys while the input is not focused
type BlurredMode struct{}

func NewBlurredMode() *BlurredMode {
	return &BlurredMode{}
}

func (m *BlurredMode) Name() string {
	return "blurred"
}

func (m *BlurredMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case tea.KeyEsc:
		if ctx.ListVisible() {
			return []types.Action{types.DismissListAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyEnter:
		if ctx.HasCursorSuggestion() {
			return []types.Action{types.ChooseAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "?":
		return []types.Action{types.ShowHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
