// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Touch emulation: presses on the simulated panel
	ActionTap  Action = "tap"  // short press at the centre
	ActionHold Action = "hold" // press past the long-press threshold
	ActionBack Action = "back" // tap on the settings footer

	// Device actions, same as the web API
	ActionTestAlert Action = "test_alert"
	ActionStopAlert Action = "stop_alert"
	ActionRefresh   Action = "refresh"
	ActionRotate    Action = "rotate"
	ActionMosque    Action = "mosque" // open the mosque search popup
)
