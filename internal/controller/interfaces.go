package controller

import (
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/settings"
)

// Renderer draws a frame. It is called synchronously from Tick and must not
// call back into the controller.
type Renderer interface {
	Render(f Frame)
}

// SettingsStore persists settings. SaveSettings must not block; failures are
// the store's concern.
type SettingsStore interface {
	SaveSettings(m settings.Model, changed settings.Field)
}

// AlertPlayer plays the adhan. Start with prayer.None plays a test alert.
type AlertPlayer interface {
	Start(idx prayer.Index)
	Stop()
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame)

// Render implements Renderer.
func (fn RendererFunc) Render(f Frame) { fn(f) }

type nopStore struct{}

func (nopStore) SaveSettings(settings.Model, settings.Field) {}

type nopPlayer struct{}

func (nopPlayer) Start(prayer.Index) {}
func (nopPlayer) Stop()              {}

type nopRenderer struct{}

func (nopRenderer) Render(Frame) {}
