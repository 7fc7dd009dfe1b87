// Package i18n holds the display strings for every supported language.
// Lookups validate their inputs and fall back instead of indexing blindly.
package i18n

import "github.com/llehouerou/mawaqit-display/internal/prayer"

// Language selects a string table.
type Language int

const (
	German Language = iota
	English
	French
	Turkish
	Arabic
)

// LanguageCount is the number of supported languages.
const LanguageCount = 5

// Default is used for out-of-range languages.
const Default = German

// Valid reports whether l has a string table.
func (l Language) Valid() bool { return l >= 0 && l < LanguageCount }

// Code returns the short selector label ("DE", "EN", ...).
func (l Language) Code() string {
	return [LanguageCount]string{"DE", "EN", "FR", "TR", "AR"}[l.orDefault()]
}

// Name returns the language's own name.
func (l Language) Name() string {
	return [LanguageCount]string{"Deutsch", "English", "Francais", "Turkce", "Arabic"}[l.orDefault()]
}

func (l Language) orDefault() Language {
	if !l.Valid() {
		return Default
	}
	return l
}

// Key names a UI string.
type Key string

const (
	KeyNext       Key = "next"
	KeyRemaining  Key = "remaining"
	KeySettings   Key = "settings"
	KeyTapModes   Key = "tap_modes"
	KeyLanguage   Key = "language"
	KeyTheme      Key = "theme"
	KeyAutoNight  Key = "auto_night"
	KeyBack       Key = "back"
	KeyLoading    Key = "loading"
	KeyNoClock    Key = "no_clock"
	KeyAdhan      Key = "adhan"
	KeyTapToStop  Key = "tap_to_stop"
	KeyTomorrow   Key = "tomorrow"
	KeyOn         Key = "on"
	KeyOff        Key = "off"
	KeyHoldToExit Key = "hold_to_exit"
)

var texts = map[Key][LanguageCount]string{
	KeyNext:       {"Naechstes", "Next", "Prochain", "Sonraki", "Next"},
	KeyRemaining:  {"verbleibend", "remaining", "restant", "kalan", "remaining"},
	KeySettings:   {"Einstellungen", "Settings", "Parametres", "Ayarlar", "Settings"},
	KeyTapModes:   {"Tippen: Modi", "Tap: Modes", "Appuyer", "Dokun", "Tap"},
	KeyLanguage:   {"Sprache", "Language", "Langue", "Dil", "Language"},
	KeyTheme:      {"Farbe", "Theme", "Theme", "Tema", "Theme"},
	KeyAutoNight:  {"Nachtmodus", "Night mode", "Mode nuit", "Gece modu", "Night mode"},
	KeyBack:       {"Zurueck", "Back", "Retour", "Geri", "Back"},
	KeyLoading:    {"Lade Gebetszeiten...", "Loading prayer times...", "Chargement...", "Yukleniyor...", "Loading..."},
	KeyNoClock:    {"Zeit nicht verfuegbar", "Time unavailable", "Heure indisponible", "Saat yok", "Time unavailable"},
	KeyAdhan:      {"Adhan", "Adhan", "Adhan", "Ezan", "Adhan"},
	KeyTapToStop:  {"Tippen zum Stoppen", "Tap to stop", "Appuyer pour arreter", "Durdurmak icin dokun", "Tap to stop"},
	KeyTomorrow:   {"morgen", "tomorrow", "demain", "yarin", "tomorrow"},
	KeyOn:         {"An", "On", "Oui", "Acik", "On"},
	KeyOff:        {"Aus", "Off", "Non", "Kapali", "Off"},
	KeyHoldToExit: {"Halten: zurueck", "Hold: back", "Maintenir: retour", "Basili tut: geri", "Hold: back"},
}

var prayerNames = [LanguageCount][prayer.Count]string{
	{"Fajr", "Shuruk", "Dhuhr", "Asr", "Maghrib", "Isha"},
	{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"},
	{"Fajr", "Chourouk", "Dhuhr", "Asr", "Maghrib", "Isha"},
	{"Sabah", "Gunes", "Ogle", "Ikindi", "Aksam", "Yatsi"},
	{"Fajr", "Shuruk", "Dhuhr", "Asr", "Maghrib", "Isha"},
}

var weekdays = [LanguageCount][7]string{
	{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"},
	{"Paz", "Pzt", "Sal", "Car", "Per", "Cum", "Cmt"},
	{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

// Text returns the string for key in lang. Unknown languages use Default;
// unknown keys return the key itself.
func Text(lang Language, key Key) string {
	row, ok := texts[key]
	if !ok {
		return string(key)
	}
	return row[lang.orDefault()]
}

// PrayerName returns the localized name of idx, or "" for None.
func PrayerName(lang Language, idx prayer.Index) string {
	if !idx.Valid() {
		return ""
	}
	return prayerNames[lang.orDefault()][idx]
}

// Weekday returns the abbreviated weekday name (0 = Sunday).
func Weekday(lang Language, day int) string {
	return weekdays[lang.orDefault()][((day%7)+7)%7]
}
