package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"citysearch/internal/ui/input/types"
)

type ModalMode struct{}

func NewModalMode() *ModalMode {
	return &ModalMode{}
}

func (m *ModalMode) Name() string {
	return "modal"
}

func (m *ModalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "enter", "q":
		return []types.Action{
			types.CloseModalAction{},
			types.ChangeModeAction{Mode: types.ModeQuery},
		}, true
	}

	// everything else is swallowed while the modal is up
	return nil, true
}
