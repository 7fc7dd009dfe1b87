// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "touch", "settings"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show keys", "global"},
	{ActionTestAlert, []string{"t"}, "Play test adhan", "global"},
	{ActionStopAlert, []string{"x"}, "Stop adhan", "global"},
	{ActionRefresh, []string{"r"}, "Fetch prayer times", "global"},
	{ActionRotate, []string{"o"}, "Rotate display", "global"},
	{ActionMosque, []string{"m"}, "Search mosque", "global"},

	// Touch
	{ActionTap, []string{" ", "enter"}, "Tap (next screen, dismiss adhan)", "touch"},
	{ActionHold, []string{"h"}, "Long press (settings)", "touch"},

	// Settings
	{ActionBack, []string{"esc", "backspace"}, "Back", "settings"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
