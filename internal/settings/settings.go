// Package settings holds the user-adjustable device settings.
package settings

import (
	"strconv"

	"github.com/llehouerou/mawaqit-display/internal/i18n"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

// Theme selects a color palette.
type Theme int

const (
	ThemeGreen Theme = iota
	ThemeBlue
	ThemePurple
	ThemeDark
)

// ThemeCount is the number of selectable themes.
const ThemeCount = 4

func (t Theme) String() string {
	switch t {
	case ThemeGreen:
		return "Green"
	case ThemeBlue:
		return "Blue"
	case ThemePurple:
		return "Purple"
	case ThemeDark:
		return "Dark"
	default:
		return "Unknown"
	}
}

// Field identifies one persisted setting.
type Field int

const (
	FieldAlertFajr Field = iota
	FieldAlertSunrise
	FieldAlertDhuhr
	FieldAlertAsr
	FieldAlertMaghrib
	FieldAlertIsha
	FieldLanguage
	FieldTheme
	FieldAutoNight
	FieldRotation
)

// FieldCount is the number of fields.
const FieldCount = 10

var fieldKeys = [FieldCount]string{
	"alert_fajr", "alert_shuruk", "alert_dhuhr", "alert_asr", "alert_maghrib", "alert_isha",
	"language", "theme", "auto_night", "rotation",
}

// Key returns the persistence key of f.
func (f Field) Key() string {
	if f < 0 || f >= FieldCount {
		return ""
	}
	return fieldKeys[f]
}

// AlertField returns the toggle field for a time point.
func AlertField(idx prayer.Index) Field {
	return FieldAlertFajr + Field(idx)
}

// Model is the full set of settings. Alerts is indexed by prayer.Index;
// the Sunrise entry is tracked but never triggers an alert.
type Model struct {
	Alerts    [prayer.Count]bool
	Language  i18n.Language
	Theme     Theme
	AutoNight bool
	Rotation  bool
}

// Defaults returns the factory settings.
func Defaults() Model {
	return Model{
		Alerts:    [prayer.Count]bool{true, false, true, true, true, true},
		Language:  i18n.Default,
		Theme:     ThemeGreen,
		AutoNight: true,
	}
}

// AlertEnabled reports whether reaching idx should raise an alert.
func (m Model) AlertEnabled(idx prayer.Index) bool {
	return idx.IsPrayer() && m.Alerts[idx]
}

// Toggle flips a boolean field, or advances language/theme to the next value.
func (m *Model) Toggle(f Field) {
	switch {
	case f >= FieldAlertFajr && f <= FieldAlertIsha:
		m.Alerts[f-FieldAlertFajr] = !m.Alerts[f-FieldAlertFajr]
	case f == FieldLanguage:
		m.SetLanguage(int(m.Language) + 1)
	case f == FieldTheme:
		m.SetTheme(int(m.Theme) + 1)
	case f == FieldAutoNight:
		m.AutoNight = !m.AutoNight
	case f == FieldRotation:
		m.Rotation = !m.Rotation
	}
}

// SetAlert sets the toggle for idx and returns the field it touched.
func (m *Model) SetAlert(idx prayer.Index, on bool) Field {
	if idx.Valid() {
		m.Alerts[idx] = on
	}
	return AlertField(idx)
}

// SetLanguage stores v modulo the number of languages.
func (m *Model) SetLanguage(v int) {
	m.Language = i18n.Language(mod(v, i18n.LanguageCount))
}

// SetTheme stores v modulo the number of themes.
func (m *Model) SetTheme(v int) {
	m.Theme = Theme(mod(v, ThemeCount))
}

// Value returns f as an integer (booleans are 0/1).
func (m Model) Value(f Field) int {
	switch {
	case f >= FieldAlertFajr && f <= FieldAlertIsha:
		return boolInt(m.Alerts[f-FieldAlertFajr])
	case f == FieldLanguage:
		return int(m.Language)
	case f == FieldTheme:
		return int(m.Theme)
	case f == FieldAutoNight:
		return boolInt(m.AutoNight)
	case f == FieldRotation:
		return boolInt(m.Rotation)
	}
	return 0
}

// Set stores an integer value into f (booleans are non-zero).
func (m *Model) Set(f Field, v int) {
	switch {
	case f >= FieldAlertFajr && f <= FieldAlertIsha:
		m.Alerts[f-FieldAlertFajr] = v != 0
	case f == FieldLanguage:
		m.SetLanguage(v)
	case f == FieldTheme:
		m.SetTheme(v)
	case f == FieldAutoNight:
		m.AutoNight = v != 0
	case f == FieldRotation:
		m.Rotation = v != 0
	}
}

// Entries returns every field keyed by its persistence key.
func (m Model) Entries() map[string]int {
	out := make(map[string]int, FieldCount)
	for f := range Field(FieldCount) {
		out[f.Key()] = m.Value(f)
	}
	return out
}

// FromEntries rebuilds a model from persisted entries. Missing keys keep
// their default.
func FromEntries(entries map[string]int) Model {
	m := Defaults()
	for f := range Field(FieldCount) {
		if v, ok := entries[f.Key()]; ok {
			m.Set(f, v)
		}
	}
	return m
}

// FieldByKey resolves a persistence key.
func FieldByKey(key string) (Field, bool) {
	for f, k := range fieldKeys {
		if k == key {
			return Field(f), true
		}
	}
	return 0, false
}

// ParseAlertName resolves "fajr", "shuruk"/"sunrise", ... to a time point.
func ParseAlertName(name string) (prayer.Index, bool) {
	switch name {
	case "fajr":
		return prayer.Fajr, true
	case "shuruk", "sunrise":
		return prayer.Sunrise, true
	case "dhuhr":
		return prayer.Dhuhr, true
	case "asr":
		return prayer.Asr, true
	case "maghrib":
		return prayer.Maghrib, true
	case "isha":
		return prayer.Isha, true
	}
	if n, err := strconv.Atoi(name); err == nil && prayer.Index(n).Valid() {
		return prayer.Index(n), true
	}
	return prayer.None, false
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CycleLanguage advances to the next language.
func (m *Model) CycleLanguage() {
	m.SetLanguage(int(m.Language) + 1)
}

// SetRotation sets the 180° display flip.
func (m *Model) SetRotation(on bool) {
	m.Rotation = on
}
