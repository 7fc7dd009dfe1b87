// internal/player/interface.go
package player

import "github.com/llehouerou/mawaqit-display/internal/prayer"

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Start(idx prayer.Index)
	Stop()
	State() State
	Done() <-chan struct{}
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
