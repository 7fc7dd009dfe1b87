package player

// State is the playback state of the adhan.
//
//	┌──────────┐     Start      ┌──────────┐
//	│  Stopped │ ──────────────▶│  Playing │
//	└──────────┘                └──────────┘
//	     ▲                           │
//	     └───────────────────────────┘
//	        Stop, or end of file
type State int

const (
	Stopped State = iota
	Playing
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}
