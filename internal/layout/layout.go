// Package layout describes the touch zones of the settings screen.
package layout

import "image"

// Panel dimensions of the reference display.
const (
	Width  = 480
	Height = 272
)

// Kind is the type of setting a zone controls.
type Kind int

const (
	KindAlert Kind = iota
	KindLanguage
	KindTheme
	KindAutoNight
	KindBack
)

func (k Kind) String() string {
	switch k {
	case KindAlert:
		return "alert"
	case KindLanguage:
		return "language"
	case KindTheme:
		return "theme"
	case KindAutoNight:
		return "auto_night"
	case KindBack:
		return "back"
	default:
		return "unknown"
	}
}

// Target is what a zone maps to. Index is the time point for KindAlert and
// the swatch for KindTheme; it is zero otherwise.
type Target struct {
	Kind  Kind
	Index int
}

// Zone is a screen rectangle bound to a target.
type Zone struct {
	Bounds image.Rectangle
	Target Target
}

// Layout is the set of zones of one screen. Zones are tested in order.
type Layout struct {
	Width  int
	Height int
	Zones  []Zone
}

// HitTest returns the target under (x, y).
func (l Layout) HitTest(x, y int) (Target, bool) {
	p := image.Pt(x, y)
	for _, z := range l.Zones {
		if p.In(z.Bounds) {
			return z.Target, true
		}
	}
	return Target{}, false
}

// Find returns the zone of a target.
func (l Layout) Find(t Target) (Zone, bool) {
	for _, z := range l.Zones {
		if z.Target == t {
			return z, true
		}
	}
	return Zone{}, false
}

// Geometry of the settings screen.
const (
	AlertTop     = 55
	AlertRow     = 28
	AlertRight   = 235
	RightColumn  = 235
	LanguageLeft = 350
	LanguageTop  = 54
	ThemeTop     = 86
	SwatchLeft   = 240
	SwatchWidth  = 30
	NightTop     = 118
	NightBottom  = 150
	BackTop      = 250
	Swatches     = 4
	AlertRows    = 6
)

// Default returns the settings layout of the 480x272 panel: six alert rows
// on the left, the language arrow, four theme swatches and the night toggle
// on the right, and the back bar in the footer.
func Default() Layout {
	zones := make([]Zone, 0, AlertRows+Swatches+3)
	for i := range AlertRows {
		zones = append(zones, Zone{
			Bounds: image.Rect(0, AlertTop+i*AlertRow, AlertRight, AlertTop+(i+1)*AlertRow),
			Target: Target{Kind: KindAlert, Index: i},
		})
	}
	zones = append(zones, Zone{
		Bounds: image.Rect(LanguageLeft, LanguageTop, Width, ThemeTop),
		Target: Target{Kind: KindLanguage},
	})
	for i := range Swatches {
		left := SwatchLeft + i*SwatchWidth
		zones = append(zones, Zone{
			Bounds: image.Rect(left, ThemeTop, left+SwatchWidth, NightTop),
			Target: Target{Kind: KindTheme, Index: i},
		})
	}
	zones = append(zones,
		Zone{
			Bounds: image.Rect(RightColumn, NightTop, Width, NightBottom),
			Target: Target{Kind: KindAutoNight},
		},
		Zone{
			Bounds: image.Rect(RightColumn, BackTop, Width, Height),
			Target: Target{Kind: KindBack},
		},
	)
	return Layout{Width: Width, Height: Height, Zones: zones}
}
