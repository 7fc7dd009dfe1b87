// Package helpbindings builds the key help dialog of the simulator.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mawaqit-display/internal/keymap"
	"github.com/llehouerou/mawaqit-display/internal/ui/popup"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"touch", "settings", "global"}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":   "Device",
	"touch":    "Touch",
	"settings": "Settings",
}

// Dialog returns the help popup for theme.
func Dialog(t *styles.Theme) *popup.Dialog {
	return &popup.Dialog{
		Title:   "Keys",
		Content: Content(t, categoryOrder),
		Footer:  "mouse: click = tap, hold 1.5s = long press",
		Style:   popup.ThemeStyle(t),
	}
}

// Content lists the bindings of contexts, grouped under category headers.
func Content(t *styles.Theme, contexts []string) string {
	var bindings []keymap.Binding
	for _, ctx := range contexts {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}

	bg := lipgloss.NewStyle().Background(t.Header)
	keyStyle := bg.Foreground(t.Accent).Bold(true)
	descStyle := bg.Foreground(t.Text)
	headerStyle := bg.Foreground(t.Label).Bold(true)

	maxKeyWidth := 0
	for _, b := range bindings {
		maxKeyWidth = max(maxKeyWidth, len(keyLabel(b.Keys)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		keyStr := keyLabel(b.Keys)
		sb.WriteString(keyStyle.Render(keyStr + strings.Repeat(" ", maxKeyWidth-len(keyStr))))
		sb.WriteString(bg.Render("  "))
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyLabel joins keys for display, naming the space bar.
func keyLabel(keys []string) string {
	named := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		named[i] = k
	}
	return strings.Join(named, ", ")
}
