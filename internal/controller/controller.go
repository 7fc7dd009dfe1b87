// Package controller owns the display mode and drives it from classified
// touch events, the prayer schedule and periodic ticks.
package controller

import (
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/layout"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/settings"
	"github.com/llehouerou/mawaqit-display/internal/touch"
)

// DefaultRefreshInterval is the re-render period of the clock and countdown.
const DefaultRefreshInterval = time.Second

// Options configures a Controller. Nil collaborators are replaced by no-ops.
type Options struct {
	Sampler  touch.Sampler
	Clock    prayer.Clock
	Renderer Renderer
	Store    SettingsStore
	Player   AlertPlayer
	Layout   layout.Layout
	Settings settings.Model

	RefreshInterval time.Duration
}

// Controller is the single writer of the mode and the settings. All methods
// must be called from the same goroutine.
type Controller struct {
	sampler    touch.Sampler
	classifier *touch.Classifier
	engine     *prayer.Engine
	renderer   Renderer
	store      SettingsStore
	player     AlertPlayer
	layout     layout.Layout
	refresh    time.Duration

	settings settings.Model
	mode     Mode
	// previous is the cycling mode to return to from settings.
	previous Mode
	// beforeAlert is the mode to restore when the alert ends.
	beforeAlert Mode
	alertPrayer prayer.Index

	loaded     bool
	dirty      bool
	lastRender time.Time
	last       prayer.Reading
	hasLast    bool
	closed     bool
}

// New creates a controller in the loading state.
func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = &prayer.SystemClock{}
	}
	c := &Controller{
		sampler:     opts.Sampler,
		classifier:  touch.NewClassifier(),
		engine:      prayer.NewEngine(opts.Clock),
		renderer:    opts.Renderer,
		store:       opts.Store,
		player:      opts.Player,
		layout:      opts.Layout,
		refresh:     opts.RefreshInterval,
		settings:    opts.Settings,
		mode:        ModeList,
		previous:    ModeList,
		beforeAlert: ModeList,
		alertPrayer: prayer.None,
		dirty:       true,
	}
	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}
	if c.store == nil {
		c.store = nopStore{}
	}
	if c.player == nil {
		c.player = nopPlayer{}
	}
	if c.layout.Zones == nil {
		c.layout = layout.Default()
	}
	if c.refresh <= 0 {
		c.refresh = DefaultRefreshInterval
	}
	return c
}

// Tick runs one loop iteration: sample and classify touch, read the clock,
// evaluate the schedule, apply transitions, and render at most once.
func (c *Controller) Tick(at time.Time) {
	if c.closed {
		return
	}
	ev, hasEvent := c.poll()
	reading := c.engine.Read()

	dirty := c.dirty
	c.dirty = false

	if c.loaded {
		if hasEvent && c.handleTouch(ev) {
			dirty = true
		}
		if c.checkAlert(reading) {
			dirty = true
		}
		if c.needsRefresh(at, reading) {
			dirty = true
		}
	}

	c.last = reading
	c.hasLast = true

	if dirty {
		c.render(at, reading)
	}
}

func (c *Controller) poll() (touch.Event, bool) {
	if c.sampler == nil {
		return touch.Event{}, false
	}
	s, ok := c.sampler.Sample()
	if !ok {
		return touch.Event{}, false
	}
	if c.settings.Rotation {
		s = touch.Rotate180(s, c.layout.Width, c.layout.Height)
	}
	return c.classifier.Update(s)
}

func (c *Controller) handleTouch(ev touch.Event) bool {
	switch c.mode {
	case ModeAlert:
		if ev.Kind == touch.Released {
			return c.fire(trigDismiss)
		}
	case ModeSettings:
		if ev.Kind == touch.HeldPastThreshold {
			return c.fire(trigHold)
		}
		if !ev.Short() {
			return false
		}
		target, ok := c.layout.HitTest(ev.X, ev.Y)
		if !ok {
			return false
		}
		if target.Kind == layout.KindBack {
			return c.fire(trigBack)
		}
		if c.fire(trigZone) {
			c.applyZone(target)
			return true
		}
	default:
		if ev.Kind == touch.HeldPastThreshold {
			return c.fire(trigHold)
		}
		if ev.Short() {
			return c.fire(trigTap)
		}
	}
	return false
}

// fire applies the transition for t from the current mode. It returns false
// when the table has no entry.
func (c *Controller) fire(t trigger) bool {
	from := c.mode
	to, ok := transitions[from][t]
	if !ok {
		return false
	}
	if to == modeReturn {
		if from == ModeAlert {
			to = c.beforeAlert
		} else {
			to = c.previous
		}
	}
	if from.Cycling() && to == ModeSettings {
		c.previous = from
	}
	if to == ModeAlert {
		c.beforeAlert = from
	}
	if from == ModeAlert && to != ModeAlert {
		c.player.Stop()
		c.alertPrayer = prayer.None
	}
	c.mode = to
	if from != to {
		log.Debug().Stringer("from", from).Stringer("to", to).Stringer("trigger", t).Msg("mode transition")
	}
	return true
}

func (c *Controller) applyZone(target layout.Target) {
	var f settings.Field
	switch target.Kind {
	case layout.KindAlert:
		f = settings.AlertField(prayer.Index(target.Index))
		c.settings.Toggle(f)
	case layout.KindLanguage:
		f = settings.FieldLanguage
		c.settings.CycleLanguage()
	case layout.KindTheme:
		f = settings.FieldTheme
		c.settings.SetTheme(target.Index)
	case layout.KindAutoNight:
		f = settings.FieldAutoNight
		c.settings.Toggle(f)
	default:
		return
	}
	c.persist(f)
}

func (c *Controller) persist(f settings.Field) {
	log.Debug().Str("field", f.Key()).Int("value", c.settings.Value(f)).Msg("settings changed")
	c.store.SaveSettings(c.settings, f)
}

// checkAlert enters the alert mode when the clock crossed an enabled prayer
// since the previous tick.
func (c *Controller) checkAlert(r prayer.Reading) bool {
	if !c.hasLast || !c.last.ClockOK || !r.ClockOK || c.mode == ModeAlert {
		return false
	}
	idx, ok := c.engine.Crossed(c.last.Now, r.Now)
	if !ok || !c.settings.AlertEnabled(idx) {
		return false
	}
	return c.startAlert(idx)
}

func (c *Controller) startAlert(idx prayer.Index) bool {
	if !c.fire(trigAlert) {
		return false
	}
	c.alertPrayer = idx
	log.Info().Stringer("prayer", idx).Msg("alert started")
	c.player.Start(idx)
	return true
}

func (c *Controller) needsRefresh(at time.Time, r prayer.Reading) bool {
	switch c.mode {
	case ModeClock, ModeCountdown:
		return at.Sub(c.lastRender) >= c.refresh
	case ModeList, ModeSettings:
		// The header clock and the highlighted row change once per minute.
		return r.ClockOK != c.last.ClockOK || r.Now.Minutes() != c.last.Now.Minutes()
	}
	return false
}

func (c *Controller) render(at time.Time, r prayer.Reading) {
	night := c.loaded && nightActive(c.settings, r.State)
	theme := c.settings.Theme
	if night {
		theme = settings.ThemeDark
	}
	c.renderer.Render(Frame{
		Mode:        c.mode,
		Loading:     !c.loaded,
		At:          at,
		Schedule:    c.engine.Schedule(),
		State:       r.State,
		Now:         r.Now,
		ClockOK:     r.ClockOK,
		Settings:    c.settings,
		Theme:       theme,
		Night:       night,
		AlertPrayer: c.alertPrayer,
		Layout:      c.layout,
	})
	c.lastRender = at
}

// SetSchedule replaces the schedule. The first usable schedule lifts the
// loading gate and shows the list.
func (c *Controller) SetSchedule(s prayer.Schedule) {
	c.engine.Update(s)
	if !c.loaded && s.Usable() {
		c.loaded = true
		c.mode = ModeList
		log.Info().Str("mosque", s.Label).Msg("schedule loaded")
	}
	c.dirty = true
}

// SetAlert enables or disables the alert of one time point.
func (c *Controller) SetAlert(idx prayer.Index, on bool) {
	if !idx.Valid() {
		return
	}
	c.persist(c.settings.SetAlert(idx, on))
	c.dirty = true
}

// SetRotation sets the 180° flip.
func (c *Controller) SetRotation(on bool) {
	c.settings.SetRotation(on)
	c.persist(settings.FieldRotation)
	c.dirty = true
}

// TestAlert starts a test alert unless one is already playing.
func (c *Controller) TestAlert() bool {
	if !c.loaded || !c.startAlert(prayer.None) {
		return false
	}
	c.dirty = true
	return true
}

// StopAlert ends the active alert, as a tap would.
func (c *Controller) StopAlert() bool {
	if c.mode != ModeAlert {
		return false
	}
	c.fire(trigDismiss)
	c.dirty = true
	return true
}

// Invalidate requests a render on the next tick.
func (c *Controller) Invalidate() { c.dirty = true }

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Settings returns a copy of the settings.
func (c *Controller) Settings() settings.Model { return c.settings }

// Snapshot returns the current state, evaluated against a fresh clock read.
func (c *Controller) Snapshot() Snapshot {
	r := c.engine.Read()
	return Snapshot{
		Mode:        c.mode,
		Loaded:      c.loaded,
		Schedule:    c.engine.Schedule(),
		State:       r.State,
		Now:         r.Now,
		ClockOK:     r.ClockOK,
		Settings:    c.settings,
		AlertPrayer: c.alertPrayer,
	}
}

// Close stops an active alert and releases the touch sampler.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.mode == ModeAlert {
		c.player.Stop()
	}
	if closer, ok := c.sampler.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
