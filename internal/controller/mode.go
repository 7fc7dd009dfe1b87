package controller

// Mode is the screen the device currently shows.
type Mode int

const (
	ModeList Mode = iota
	ModeClock
	ModeCountdown
	ModeSettings
	ModeAlert
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeClock:
		return "clock"
	case ModeCountdown:
		return "countdown"
	case ModeSettings:
		return "settings"
	case ModeAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// Cycling reports whether m is one of the modes a short tap cycles through.
func (m Mode) Cycling() bool {
	return m == ModeList || m == ModeClock || m == ModeCountdown
}

type trigger int

const (
	trigTap     trigger = iota // short tap outside settings
	trigHold                   // long press
	trigZone                   // short tap on a settings zone
	trigBack                   // short tap on the back zone
	trigAlert                  // enabled prayer boundary crossed
	trigDismiss                // any release during an alert
)

func (t trigger) String() string {
	return [...]string{"tap", "hold", "zone", "back", "alert", "dismiss"}[t]
}

// modeReturn resolves to the mode tracked for the state being left: the last
// cycling mode when leaving settings, the pre-alert mode when leaving an
// alert.
const modeReturn Mode = -1

var transitions = map[Mode]map[trigger]Mode{
	ModeList: {
		trigTap:   ModeClock,
		trigHold:  ModeSettings,
		trigAlert: ModeAlert,
	},
	ModeClock: {
		trigTap:   ModeCountdown,
		trigHold:  ModeSettings,
		trigAlert: ModeAlert,
	},
	ModeCountdown: {
		trigTap:   ModeList,
		trigHold:  ModeSettings,
		trigAlert: ModeAlert,
	},
	ModeSettings: {
		trigHold:  modeReturn,
		trigZone:  ModeSettings,
		trigBack:  modeReturn,
		trigAlert: ModeAlert,
	},
	ModeAlert: {
		trigDismiss: modeReturn,
	},
}
