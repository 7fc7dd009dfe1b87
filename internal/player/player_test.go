package player

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1, 0},
		{1.5, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -10},
		{-1, -10},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, levelToVolume(tt.level), 1e-9, "level %v", tt.level)
	}
	assert.False(t, math.IsNaN(levelToVolume(0.8)))
}

func TestNew_ClampsVolume(t *testing.T) {
	assert.InDelta(t, 1.0, New("a.mp3", 150).level, 1e-9)
	assert.InDelta(t, 0.0, New("a.mp3", -5).level, 1e-9)
	assert.InDelta(t, 0.8, New("a.mp3", 80).level, 1e-9)
}

func TestPlay_Errors(t *testing.T) {
	dir := t.TempDir()
	p := New(filepath.Join(dir, "adhan.mp3"), 80)

	err := p.Play(filepath.Join(dir, "adhan.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	require.Error(t, p.Play(filepath.Join(dir, "missing.mp3")))

	garbage := filepath.Join(dir, "garbage.mp3")
	require.NoError(t, os.WriteFile(garbage, []byte("not an mp3"), 0o600))
	require.Error(t, p.Play(garbage))

	assert.Equal(t, Stopped, p.State())
}

func TestStart_MissingFileStaysStopped(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "none.mp3"), 80)
	p.Start(prayer.Fajr)
	assert.Equal(t, Stopped, p.State())

	select {
	case <-p.Done():
	default:
		t.Fatal("Done() should be closed when nothing plays")
	}
	p.Stop()
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.Start(prayer.Isha)
	assert.Equal(t, Playing, m.State())
	m.Stop()
	assert.Equal(t, Stopped, m.State())
	assert.Equal(t, []prayer.Index{prayer.Isha}, m.StartCalls())
	assert.Equal(t, 1, m.StopCalls())
}
