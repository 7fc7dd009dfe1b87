package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		key  Key
		want string
	}{
		{"english", English, KeyNext, "Next"},
		{"turkish", Turkish, KeyRemaining, "kalan"},
		{"negative falls back", Language(-1), KeySettings, "Einstellungen"},
		{"too large falls back", Language(9), KeyBack, "Zurueck"},
		{"unknown key", English, Key("missing"), "missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.lang, tt.key))
		})
	}
}

func TestPrayerName(t *testing.T) {
	assert.Equal(t, "Sunrise", PrayerName(English, prayer.Sunrise))
	assert.Equal(t, "Yatsi", PrayerName(Turkish, prayer.Isha))
	assert.Equal(t, "Shuruk", PrayerName(Language(42), prayer.Sunrise))
	assert.Empty(t, PrayerName(English, prayer.None))
}

func TestEveryKeyHasAllLanguages(t *testing.T) {
	for key, row := range texts {
		for l := range LanguageCount {
			assert.NotEmpty(t, row[l], "key %s language %d", key, l)
		}
	}
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, "Mon", Weekday(English, 1))
	assert.Equal(t, "Sa", Weekday(German, -1))
}

func TestLanguageCode(t *testing.T) {
	assert.Equal(t, "FR", French.Code())
	assert.Equal(t, "DE", Language(7).Code())
	assert.Equal(t, "Arabic", Arabic.Name())
}
