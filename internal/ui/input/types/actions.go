package types

// Focus actions
type FocusInputAction struct{}

func (a FocusInputAction) Type() string { return "focus_input" }

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// List actions
type ChooseAction struct{} // choose the suggestion under the cursor

func (a ChooseAction) Type() string { return "choose" }

type DismissListAction struct{}

func (a DismissListAction) Type() string { return "dismiss_list" }

type RevealListAction struct{}

func (a RevealListAction) Type() string { return "reveal_list" }

// Modal actions
type CloseModalAction struct{}

func (a CloseModalAction) Type() string { return "close_modal" }

// Command actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
