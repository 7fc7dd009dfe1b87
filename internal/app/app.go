// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/keymap"
	"github.com/llehouerou/mawaqit-display/internal/notify"
	"github.com/llehouerou/mawaqit-display/internal/touch"
	"github.com/llehouerou/mawaqit-display/internal/ui/mosquesearch"
)

// Options configures the simulator model.
type Options struct {
	Controller *controller.Controller
	Frames     *Frames
	// Pointer receives mouse and key presses. Nil when a hardware touch
	// controller is in use.
	Pointer *touch.Pointer
	// Events receives schedule updates. Optional.
	Events notify.Sink
	// Refresh triggers a background fetch. Optional.
	Refresh func()
	// Searcher and Selector back the mosque search popup. Optional.
	Searcher mosquesearch.Searcher
	Selector *Selector

	Tick time.Duration
	// Web is the listen address of the web API, shown in the status line.
	Web       string
	FetchedAt time.Time
	Now       func() time.Time
}

// Model is the root application model.
type Model struct {
	Controller *controller.Controller
	Frames     *Frames
	Pointer    *touch.Pointer
	Events     notify.Sink
	Keys       *keymap.Resolver
	Spinner    spinner.Model
	// Search is the open mosque search popup, nil when closed.
	Search *mosquesearch.Model

	refresh   func()
	searcher  mosquesearch.Searcher
	selector  *Selector
	tick      time.Duration
	now       func() time.Time
	web       string
	FetchedAt time.Time
	ErrorMsg  string
	ShowHelp  bool
	Width     int
	Height    int
}

// New creates the model. The controller must render into opts.Frames.
func New(opts Options) Model {
	if opts.Tick <= 0 {
		opts.Tick = 50 * time.Millisecond
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Frames == nil {
		opts.Frames = &Frames{}
	}
	return Model{
		Controller: opts.Controller,
		Frames:     opts.Frames,
		Pointer:    opts.Pointer,
		Events:     opts.Events,
		Keys:       keymap.NewResolver(keymap.Bindings),
		Spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		refresh:    opts.Refresh,
		searcher:   opts.Searcher,
		selector:   opts.Selector,
		tick:       opts.Tick,
		now:        opts.Now,
		web:        opts.Web,
		FetchedAt:  opts.FetchedAt,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(m.tick), m.Spinner.Tick, WatchStderr())
}
