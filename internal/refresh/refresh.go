// Package refresh keeps the prayer schedule current by fetching it on a cron
// schedule.
package refresh

import (
	"context"
	stdlog "log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/errmsg"
	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

// Source fetches a schedule for a mosque.
type Source interface {
	Fetch(ctx context.Context, sel mawaqit.Selection) (prayer.Schedule, error)
}

// Cache stores the last good schedule.
type Cache interface {
	SaveSchedule(s prayer.Schedule, fetchedAt time.Time) error
}

// Options configures a Refresher.
type Options struct {
	// Mosque returns the current selection; it is called before every fetch.
	Mosque func() mawaqit.Selection
	// Deliver receives every schedule fetched successfully.
	Deliver func(prayer.Schedule)
	// Failed receives fetch errors. Optional.
	Failed func(error)
	Cache  Cache
	// Specs are cron expressions; descriptors such as "@every 1h" are accepted.
	Specs   []string
	Timeout time.Duration
	Now     func() time.Time
}

// Refresher runs fetches on its cron schedule and on demand. Fetch failures
// leave the previous schedule in place.
type Refresher struct {
	source Source
	opts   Options
	cron   *cron.Cron
	mu     sync.Mutex // serializes fetches
}

// New creates a refresher. Specs are validated here.
func New(source Source, opts Options) (*Refresher, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	// cron's default logger writes to stdout, which the TUI owns.
	logger := cron.PrintfLogger(stdlog.New(log.Logger, "cron: ", 0))
	c := cron.New(cron.WithParser(parser), cron.WithLogger(logger), cron.WithChain(cron.Recover(logger)))

	r := &Refresher{source: source, opts: opts, cron: c}
	for _, spec := range opts.Specs {
		if _, err := c.AddFunc(spec, r.runScheduled); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Start begins the cron schedule and triggers an immediate fetch.
func (r *Refresher) Start() {
	r.cron.Start()
	r.Trigger()
}

// Trigger fetches in the background.
func (r *Refresher) Trigger() {
	go r.runScheduled()
}

// Stop halts the cron schedule and waits for running jobs.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Refresher) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), r.opts.Timeout)
	defer cancel()
	_ = r.Run(ctx)
}

// Run performs one fetch synchronously.
func (r *Refresher) Run(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sel mawaqit.Selection
	if r.opts.Mosque != nil {
		sel = r.opts.Mosque()
	}

	s, err := r.source.Fetch(ctx, sel)
	if err != nil {
		log.Warn().Err(err).Str("mosque", sel.Name).Msg(errmsg.Format(errmsg.OpScheduleFetch, err))
		if r.opts.Failed != nil {
			r.opts.Failed(err)
		}
		return err
	}

	now := r.opts.Now()
	s.Date = now.Format(time.DateOnly)
	log.Info().Str("mosque", s.Label).Strs("times", s.Times[:]).Msg("prayer times fetched")

	if r.opts.Deliver != nil {
		r.opts.Deliver(s)
	}
	if r.opts.Cache != nil {
		if err := r.opts.Cache.SaveSchedule(s, now); err != nil {
			log.Error().Err(err).Msg(errmsg.Format(errmsg.OpScheduleCache, err))
		}
	}
	return nil
}
