package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/mawaqit-display/internal/i18n"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

func TestDefaults(t *testing.T) {
	m := Defaults()
	assert.True(t, m.Alerts[prayer.Fajr])
	assert.False(t, m.Alerts[prayer.Sunrise])
	assert.True(t, m.Alerts[prayer.Isha])
	assert.Equal(t, i18n.German, m.Language)
	assert.Equal(t, ThemeGreen, m.Theme)
	assert.True(t, m.AutoNight)
	assert.False(t, m.Rotation)
}

func TestAlertEnabled_SunriseNeverFires(t *testing.T) {
	m := Defaults()
	m.Alerts[prayer.Sunrise] = true
	assert.False(t, m.AlertEnabled(prayer.Sunrise))
	assert.False(t, m.AlertEnabled(prayer.None))
	assert.True(t, m.AlertEnabled(prayer.Maghrib))
}

func TestToggle_ChangesExactlyOneField(t *testing.T) {
	for f := range Field(FieldCount) {
		t.Run(f.Key(), func(t *testing.T) {
			before := Defaults()
			after := before
			after.Toggle(f)

			for g := range Field(FieldCount) {
				if g == f {
					assert.NotEqual(t, before.Value(g), after.Value(g))
				} else {
					assert.Equal(t, before.Value(g), after.Value(g), "field %s", g.Key())
				}
			}
		})
	}
}

func TestToggle_TwiceRestoresBooleans(t *testing.T) {
	boolFields := []Field{
		FieldAlertFajr, FieldAlertSunrise, FieldAlertDhuhr, FieldAlertAsr,
		FieldAlertMaghrib, FieldAlertIsha, FieldAutoNight, FieldRotation,
	}
	for _, f := range boolFields {
		m := Defaults()
		m.Toggle(f)
		m.Toggle(f)
		assert.Equal(t, Defaults(), m, f.Key())
	}
}

func TestSetLanguageAndTheme_WrapByModulo(t *testing.T) {
	tests := []struct {
		in       int
		language i18n.Language
		theme    Theme
	}{
		{0, i18n.German, ThemeGreen},
		{3, i18n.Turkish, ThemeDark},
		{5, i18n.German, ThemeBlue},
		{-1, i18n.Arabic, ThemeDark},
		{9, i18n.Arabic, ThemeBlue},
	}
	for _, tt := range tests {
		var m Model
		m.SetLanguage(tt.in)
		m.SetTheme(tt.in)
		assert.Equal(t, tt.language, m.Language, "language(%d)", tt.in)
		assert.Equal(t, tt.theme, m.Theme, "theme(%d)", tt.in)
	}
}

func TestCycleLanguage(t *testing.T) {
	m := Defaults()
	for range i18n.LanguageCount {
		m.CycleLanguage()
	}
	assert.Equal(t, i18n.German, m.Language)
	m.CycleLanguage()
	assert.Equal(t, i18n.English, m.Language)
}

func TestSetAlert_ReturnsField(t *testing.T) {
	m := Defaults()
	f := m.SetAlert(prayer.Asr, false)
	assert.Equal(t, FieldAlertAsr, f)
	assert.Equal(t, "alert_asr", f.Key())
	assert.False(t, m.Alerts[prayer.Asr])
}

func TestEntriesRoundTrip(t *testing.T) {
	m := Defaults()
	m.Alerts[prayer.Dhuhr] = false
	m.Language = i18n.French
	m.Theme = ThemePurple
	m.AutoNight = false
	m.Rotation = true

	e := m.Entries()
	assert.Len(t, e, FieldCount)
	assert.Equal(t, 0, e["alert_dhuhr"])
	assert.Equal(t, 2, e["language"])
	assert.Equal(t, m, FromEntries(e))
}

func TestFromEntries_MissingKeysKeepDefaults(t *testing.T) {
	m := FromEntries(map[string]int{"theme": 7, "bogus": 1})
	want := Defaults()
	want.Theme = ThemeDark
	assert.Equal(t, want, m)
}

func TestFieldByKey(t *testing.T) {
	f, ok := FieldByKey("auto_night")
	assert.True(t, ok)
	assert.Equal(t, FieldAutoNight, f)
	_, ok = FieldByKey("volume")
	assert.False(t, ok)
}

func TestParseAlertName(t *testing.T) {
	tests := []struct {
		in   string
		want prayer.Index
		ok   bool
	}{
		{"fajr", prayer.Fajr, true},
		{"shuruk", prayer.Sunrise, true},
		{"sunrise", prayer.Sunrise, true},
		{"isha", prayer.Isha, true},
		{"4", prayer.Maghrib, true},
		{"6", prayer.None, false},
		{"witr", prayer.None, false},
	}
	for _, tt := range tests {
		got, ok := ParseAlertName(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
