// Package render provides fixed-width line helpers for the terminal panel.
// Text from the network (mosque names) passes through Sanitize first.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize makes an API string safe for one panel line: invalid bytes and
// control characters are dropped, no-break spaces become spaces and
// surrounding whitespace is trimmed.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, unsafeRune) < 0 {
		return strings.TrimSpace(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == utf8.RuneError:
		case r == '\u00a0' || r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func unsafeRune(r rune) bool {
	return r == '\u00a0' || r == '\t' || unicode.IsControl(r)
}

// Truncate shortens a string to fit within maxWidth, ending in "..".
// The panel firmware abbreviates long mosque names the same way.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "..")
}

// Row joins a left and a right part with at least one space, filling width.
// Both sides may carry styling.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
