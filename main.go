package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/app"
	"github.com/llehouerou/mawaqit-display/internal/config"
	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/errmsg"
	"github.com/llehouerou/mawaqit-display/internal/layout"
	"github.com/llehouerou/mawaqit-display/internal/logging"
	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
	"github.com/llehouerou/mawaqit-display/internal/notify"
	"github.com/llehouerou/mawaqit-display/internal/player"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/refresh"
	"github.com/llehouerou/mawaqit-display/internal/settings"
	"github.com/llehouerou/mawaqit-display/internal/state"
	"github.com/llehouerou/mawaqit-display/internal/stderr"
	"github.com/llehouerou/mawaqit-display/internal/touch"
	"github.com/llehouerou/mawaqit-display/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := logging.Setup(cfg.LogLevel(), cfg.Log.File)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logFile.Close()

	// ALSA writes to stderr, which would garble the TUI.
	if err := stderr.Start(); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	clock, err := prayer.NewSystemClock(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	store, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer store.Close()

	model, err := store.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpSettingsLoad, err))
		model = settings.Defaults()
	}
	mosque := app.NewMosqueRef(selectedMosque(cfg, store))

	sampler, pointer := openTouch(cfg)

	adhan, err := cfg.AdhanPath()
	if err != nil {
		return fmt.Errorf("adhan path: %w", err)
	}
	events := openEvents(cfg)
	defer events.Close()
	alerts := &notify.AlertPublisher{
		Player: player.New(adhan, cfg.AudioVolume()),
		Sink:   events,
		Label:  func() string { return mosque.Get().Name },
	}

	frames := &app.Frames{}
	ctrl := controller.New(controller.Options{
		Sampler:         sampler,
		Clock:           clock,
		Renderer:        frames,
		Store:           store,
		Player:          alerts,
		Layout:          layout.Default(),
		Settings:        model,
		RefreshInterval: cfg.RefreshInterval(),
	})
	defer ctrl.Close()

	var fetchedAt time.Time
	if cached, err := store.GetSchedule(); err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpScheduleLoad, err))
	} else if cached != nil {
		ctrl.SetSchedule(cached.Schedule)
		fetchedAt = cached.FetchedAt
	}

	client := mawaqit.NewClient(cfg.GetAPIConfig().BaseURL, cfg.APITimeout())
	var p *tea.Program
	rc := cfg.GetRefreshConfig()
	refresher, err := refresh.New(client, refresh.Options{
		Mosque: mosque.Get,
		Deliver: func(s prayer.Schedule) {
			p.Send(app.ScheduleMsg{Schedule: s, FetchedAt: time.Now()})
		},
		Failed: func(err error) {
			p.Send(app.FetchFailedMsg{Err: err})
		},
		Cache:   store,
		Specs:   []string{rc.Every, rc.Daily},
		Timeout: cfg.APITimeout(),
	})
	if err != nil {
		return fmt.Errorf("refresh schedule: %w", err)
	}

	selector := &app.Selector{Store: store, Mosque: mosque, Refresh: refresher.Trigger}
	m := app.New(app.Options{
		Controller: ctrl,
		Frames:     frames,
		Pointer:    pointer,
		Events:     events,
		Refresh:    refresher.Trigger,
		Tick:       cfg.TickInterval(),
		Web:        cfg.Web.Listen,
		FetchedAt:  fetchedAt,
		Searcher:   client,
		Selector:   selector,
	})
	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.HasWeb() {
		srv := web.New(web.Options{
			Backend:        app.NewBackend(p.Send, selector),
			Searcher:       client,
			AdhanPath:      adhan,
			AllowedOrigins: cfg.Web.AllowedOrigins,
		})
		srv.Start(cfg.Web.Listen)
		defer func() {
			if err := srv.Shutdown(); err != nil {
				log.Error().Err(err).Msg(errmsg.Format(errmsg.OpWebServe, err))
			}
		}()
	}

	refresher.Start()
	defer refresher.Stop()

	log.Info().Str("mosque", mosque.Get().Name).Msg("display started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// selectedMosque prefers the mosque picked at runtime over the configured one.
func selectedMosque(cfg *config.Config, store state.Interface) mawaqit.Selection {
	sel := mawaqit.Selection{ID: cfg.Mosque.ID, Name: cfg.Mosque.Name}
	saved, err := store.GetMosque()
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMosqueSelect, err))
		return sel
	}
	if saved != nil && saved.Name != "" {
		sel = mawaqit.Selection{ID: saved.UUID, Name: saved.Name}
	}
	return sel
}

// openTouch opens the configured touch input. The pointer is returned when
// the terminal mouse drives the display; a controller that fails to open
// falls back to it.
func openTouch(cfg *config.Config) (touch.Sampler, *touch.Pointer) {
	tc := cfg.GetTouchConfig()
	if tc.Driver == "gt911" {
		dev, err := touch.OpenGT911(tc.Bus, uint16(tc.Address), layout.Width, layout.Height)
		if err == nil {
			return dev, nil
		}
		log.Error().Err(err).Msg(errmsg.Format(errmsg.OpTouchOpen, err))
	}
	p := touch.NewPointer()
	return p, p
}

// openEvents builds the event sinks: desktop notifications always, MQTT
// when a broker is configured. Publishing is queued off the display loop.
func openEvents(cfg *config.Config) notify.Sink {
	sinks := notify.Multi{notify.NewDesktop(notify.NewNotifier())}
	if cfg.HasMQTT() {
		m, err := notify.NewMQTT(cfg.GetMQTTConfig())
		if err != nil {
			log.Error().Err(err).Msg(errmsg.Format(errmsg.OpMQTTConnect, err))
		} else {
			sinks = append(sinks, m)
		}
	}
	return notify.NewQueue(sinks)
}
