//go:build !linux

package notify

// NewNotifier returns a no-op notifier on non-Linux platforms.
func NewNotifier() Notifier {
	return stubNotifier{}
}
