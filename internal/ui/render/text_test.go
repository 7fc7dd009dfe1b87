package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Grande Mosquée de Paris", "Grande Mosquée de Paris"},
		{"surrounding spaces", "  Bilal \n", "Bilal"},
		{"control characters", "Mosquée\x07 Essalam\x1b", "Mosquée Essalam"},
		{"no-break space", "Merkez\u00a0Camii", "Merkez Camii"},
		{"tab", "Centre\tIslamique", "Centre Islamique"},
		{"invalid utf-8", "Masjid\xff Nour", "Masjid Nour"},
		{"arabic", "مسجد النور", "مسجد النور"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Bilal", 10, "Bilal"},
		{"exact fit", "Bilal", 5, "Bilal"},
		{"abbreviated", "Grande Mosquée de Paris", 10, "Grande M.."},
		{"accents count once", "Mosquée Lyon", 8, "Mosqué.."},
		{"sanitized before measuring", "\x1bBilal\x07", 5, "Bilal"},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), tt.maxWidth)
		})
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{"fills width", "Fajr", "05:00", 12, "Fajr   05:00"},
		{"keeps one space when too wide", "Maghrib", "18:20", 8, "Maghrib 18:20"},
		{"empty right side", "Isha", "", 6, "Isha  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Row(tt.left, tt.right, tt.width))
		})
	}
}

func TestRowIgnoresStyling(t *testing.T) {
	left := lipgloss.NewStyle().Bold(true).Render("Dhuhr")
	got := Row(left, "12:30", 15)
	assert.Equal(t, 15, lipgloss.Width(got))
}
