package helpbindings

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/mawaqit-display/internal/keymap"
	"github.com/llehouerou/mawaqit-display/internal/settings"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

func TestContentListsEveryBinding(t *testing.T) {
	plain := ansi.Strip(Content(styles.For(settings.ThemeDark), categoryOrder))

	for _, b := range keymap.Bindings {
		if !strings.Contains(plain, b.Description) {
			t.Errorf("help missing %q", b.Description)
		}
	}
	for _, label := range []string{"Touch", "Settings", "Device"} {
		if !strings.Contains(plain, label) {
			t.Errorf("help missing category %q", label)
		}
	}
	if !strings.Contains(plain, "space, enter") {
		t.Errorf("space key not named:\n%s", plain)
	}
}

func TestContentOrder(t *testing.T) {
	plain := ansi.Strip(Content(styles.For(settings.ThemeGreen), []string{"global", "touch"}))
	if strings.Index(plain, "Device") > strings.Index(plain, "Touch") {
		t.Errorf("categories out of order:\n%s", plain)
	}
	if strings.Contains(plain, "Settings") {
		t.Errorf("unrequested category rendered:\n%s", plain)
	}
}

func TestKeyLabel(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"q", "ctrl+c"}, "q, ctrl+c"},
		{[]string{" "}, "space"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := keyLabel(tt.keys); got != tt.want {
			t.Errorf("keyLabel(%q) = %q, want %q", tt.keys, got, tt.want)
		}
	}
}
