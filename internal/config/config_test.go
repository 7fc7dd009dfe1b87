//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/adhan.mp3",
			expected: filepath.Join(home, "adhan.mp3"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/sounds/adhan/makkah.mp3",
			expected: filepath.Join(home, "sounds", "adhan", "makkah.mp3"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/share/mawaqit/adhan.mp3",
			expected: "/usr/share/mawaqit/adhan.mp3",
		},
		{
			name:     "relative path unchanged",
			input:    "sounds/adhan.mp3",
			expected: "sounds/adhan.mp3",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if len(paths) > 1 {
		if filepath.Base(filepath.Dir(paths[0])) != appName {
			t.Errorf("user config path = %q, want directory %q", paths[0], appName)
		}
	}
}

func TestHasMosque(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{"id only", Config{Mosque: MosqueConfig{ID: "abc"}}, true},
		{"name only", Config{Mosque: MosqueConfig{Name: "Moschee"}}, true},
		{"neither set", Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.HasMosque(); got != tt.expected {
				t.Errorf("HasMosque() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetAPIConfig_Defaults(t *testing.T) {
	cfg := (&Config{}).GetAPIConfig()
	if cfg.BaseURL != "https://mawaqit.net/api/2.0" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10 {
		t.Errorf("Timeout = %d, want 10", cfg.Timeout)
	}
	if got := (&Config{}).APITimeout(); got != 10*time.Second {
		t.Errorf("APITimeout() = %v, want 10s", got)
	}
}

func TestGetDisplayConfig(t *testing.T) {
	tests := []struct {
		name        string
		input       DisplayConfig
		wantTick    int
		wantRefresh int
	}{
		{"defaults", DisplayConfig{}, 50, 1000},
		{"custom", DisplayConfig{TickMS: 20, RefreshMS: 5000}, 20, 5000},
		{"negative values", DisplayConfig{TickMS: -1, RefreshMS: -1}, 50, 1000},
		{"refresh below tick", DisplayConfig{TickMS: 100, RefreshMS: 10}, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Display: tt.input}
			got := cfg.GetDisplayConfig()
			if got.TickMS != tt.wantTick {
				t.Errorf("TickMS = %d, want %d", got.TickMS, tt.wantTick)
			}
			if got.RefreshMS != tt.wantRefresh {
				t.Errorf("RefreshMS = %d, want %d", got.RefreshMS, tt.wantRefresh)
			}
		})
	}
}

func TestGetTouchConfig(t *testing.T) {
	tests := []struct {
		name       string
		input      TouchConfig
		wantDriver string
		wantAddr   int
	}{
		{"defaults", TouchConfig{}, "pointer", 0x5D},
		{"gt911 upper case", TouchConfig{Driver: "GT911", Address: 0x14}, "gt911", 0x14},
		{"unknown driver", TouchConfig{Driver: "ft6236"}, "pointer", 0x5D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (&Config{Touch: tt.input}).GetTouchConfig()
			if got.Driver != tt.wantDriver {
				t.Errorf("Driver = %q, want %q", got.Driver, tt.wantDriver)
			}
			if got.Address != tt.wantAddr {
				t.Errorf("Address = %#x, want %#x", got.Address, tt.wantAddr)
			}
		})
	}
}

func TestGetMQTTConfig(t *testing.T) {
	got := (&Config{MQTT: MQTTConfig{Broker: "tcp://x:1883", Topic: "/home/prayer/"}}).GetMQTTConfig()
	if got.Topic != "home/prayer" {
		t.Errorf("Topic = %q, want %q", got.Topic, "home/prayer")
	}
	if got.ClientID != "mawaqit-display" {
		t.Errorf("ClientID = %q", got.ClientID)
	}

	def := (&Config{}).GetMQTTConfig()
	if def.Topic != "mawaqit" {
		t.Errorf("default Topic = %q, want mawaqit", def.Topic)
	}
}

func TestGetRefreshConfig(t *testing.T) {
	got := (&Config{}).GetRefreshConfig()
	if got.Every != "@every 1h" || got.Daily != "1 0 * * *" {
		t.Errorf("GetRefreshConfig() = %+v", got)
	}
}

func TestLogLevel(t *testing.T) {
	if got := (&Config{}).LogLevel(); got != "info" {
		t.Errorf("LogLevel() = %q, want info", got)
	}
	if got := (&Config{Log: LogConfig{Level: "DEBUG"}}).LogLevel(); got != "debug" {
		t.Errorf("LogLevel() = %q, want debug", got)
	}
}

func chdirTemp(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
}

func TestLoad_EmptyConfig(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("config.toml", []byte(""), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	chdirTemp(t)

	configContent := `
timezone = "Europe/Berlin"

[mosque]
id = "b5c1-uuid"
name = "Moschee Mannheim"

[api]
base_url = "http://localhost:9000/api/2.0/"

[audio]
adhan = "~/adhan.mp3"

[web]
listen = ":8080"
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Timezone != "Europe/Berlin" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.Mosque.ID != "b5c1-uuid" || cfg.Mosque.Name != "Moschee Mannheim" {
		t.Errorf("Mosque = %+v", cfg.Mosque)
	}
	// Trailing slash is removed
	if cfg.API.BaseURL != "http://localhost:9000/api/2.0" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	home, _ := os.UserHomeDir()
	if cfg.Audio.Adhan != filepath.Join(home, "adhan.mp3") {
		t.Errorf("Audio.Adhan = %q", cfg.Audio.Adhan)
	}
	if !cfg.HasWeb() {
		t.Error("HasWeb() = false, want true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv(EnvMosqueName, "")
	t.Setenv(EnvWebListen, "")

	if err := os.WriteFile("config.toml", []byte("[mosque]\nname = \"From File\"\n"), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	dotenv := EnvMosqueName + "=From Dotenv\n" + EnvWebListen + "=:9090\n"
	if err := os.WriteFile(".env", []byte(dotenv), 0o600); err != nil {
		t.Fatalf("could not write .env: %v", err)
	}
	// godotenv never overrides variables that are already set.
	_ = os.Unsetenv(EnvMosqueName)
	_ = os.Unsetenv(EnvWebListen)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mosque.Name != "From Dotenv" {
		t.Errorf("Mosque.Name = %q, want %q", cfg.Mosque.Name, "From Dotenv")
	}
	if cfg.Web.Listen != ":9090" {
		t.Errorf("Web.Listen = %q, want %q", cfg.Web.Listen, ":9090")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("config.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}

func TestAudioVolume(t *testing.T) {
	zero, loud := 0, 250
	tests := []struct {
		name   string
		volume *int
		want   int
	}{
		{"default", nil, 80},
		{"muted", &zero, 0},
		{"clamped", &loud, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Audio: AudioConfig{Volume: tt.volume}}
			if got := cfg.AudioVolume(); got != tt.want {
				t.Errorf("AudioVolume() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdhanPath(t *testing.T) {
	cfg := Config{Audio: AudioConfig{Adhan: "/srv/adhan.mp3"}}
	got, err := cfg.AdhanPath()
	if err != nil || got != "/srv/adhan.mp3" {
		t.Errorf("AdhanPath() = %q, %v", got, err)
	}

	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	got, err = (&Config{}).AdhanPath()
	if err != nil {
		t.Fatalf("AdhanPath() error: %v", err)
	}
	if filepath.Base(got) != "adhan.mp3" || filepath.Base(filepath.Dir(got)) != appName {
		t.Errorf("AdhanPath() = %q", got)
	}
}
