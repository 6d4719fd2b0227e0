package input

import (
	"citysearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

func (c *ModelContext) ListVisible() bool {
	return c.State.ListVisible
}

// HasCursorSuggestion reports whether Enter would choose something
func (c *ModelContext) HasCursorSuggestion() bool {
	_, ok := c.State.CursorSuggestion()
	return ok
}

func (c *ModelContext) ModalVisible() bool {
	return c.State.ModalVisible()
}
