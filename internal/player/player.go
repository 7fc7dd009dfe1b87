// Package player plays the adhan through the default audio device.
package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/errmsg"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

// Player plays one mp3 file per alert. It is safe for concurrent use; the
// speaker callback runs on the audio goroutine.
type Player struct {
	mu       sync.Mutex
	path     string
	level    float64
	state    State
	streamer beep.StreamSeekCloser
	file     *os.File
	done     chan struct{}
}

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
)

// New creates a player for the adhan at path. volume is a percentage.
func New(path string, volume int) *Player {
	done := make(chan struct{})
	close(done)
	return &Player{
		path:  path,
		level: clampLevel(float64(volume) / 100),
		done:  done,
	}
}

// Path returns the adhan file.
func (p *Player) Path() string { return p.path }

// Start plays the adhan for idx. prayer.None plays a test alert. Errors are
// logged; the alert screen is shown regardless.
func (p *Player) Start(idx prayer.Index) {
	if err := p.Play(p.path); err != nil {
		log.Error().Err(err).Stringer("prayer", idx).Str("path", p.path).
			Msg(errmsg.Format(errmsg.OpAlertStart, err))
		return
	}
	log.Info().Stringer("prayer", idx).Str("path", p.path).Msg("adhan playing")
}

// Play stops any current playback and plays path.
func (p *Player) Play(path string) error {
	p.Stop()

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return err
	}

	if err := initSpeaker(); err != nil {
		streamer.Close()
		f.Close()
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.file = f
	p.streamer = streamer
	p.state = Playing
	done := make(chan struct{})
	p.done = done

	volume := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   levelToVolume(p.level),
		Silent:   p.level <= 0,
	}
	resampled := beep.Resample(4, format.SampleRate, speakerRate, volume)

	speaker.Play(beep.Seq(resampled, beep.Callback(func() {
		// Runs on the speaker goroutine; release outside its lock.
		go p.finish(done)
	})))

	return nil
}

// finish releases the stream when playback reached the end of the file.
func (p *Player) finish(done chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done != done {
		return
	}
	p.release()
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return
	}
	speaker.Clear()
	p.release()
}

func (p *Player) release() {
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.state = Stopped

	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

// State returns the playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Done is closed when the current playback ends.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// speakerRate is the fixed output rate; files at other rates are resampled.
const speakerRate = beep.SampleRate(44100)

func initSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(speakerRate, speakerRate.N(time.Second/10)); err != nil {
		return err
	}
	speakerInitialized = true
	return nil
}
