package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "mawaqit"

type Config struct {
	Timezone string `koanf:"timezone"` // IANA zone, empty for the host zone

	Mosque  MosqueConfig  `koanf:"mosque"`
	API     APIConfig     `koanf:"api"`
	Display DisplayConfig `koanf:"display"`
	Touch   TouchConfig   `koanf:"touch"`
	Audio   AudioConfig   `koanf:"audio"`

	// Web API (enabled when listen is set)
	Web WebConfig `koanf:"web"`

	// MQTT events (enabled when broker is set)
	MQTT MQTTConfig `koanf:"mqtt"`

	Refresh RefreshConfig `koanf:"refresh"`
	Log     LogConfig     `koanf:"log"`
}

// MosqueConfig selects the mosque whose times are shown.
type MosqueConfig struct {
	ID   string `koanf:"id"`   // Mawaqit uuid
	Name string `koanf:"name"` // search term and display label
}

// APIConfig holds the Mawaqit API endpoint.
type APIConfig struct {
	BaseURL string `koanf:"base_url"` // default: https://mawaqit.net/api/2.0
	Timeout int    `koanf:"timeout"`  // seconds (default: 10)
}

// DisplayConfig holds loop timings.
type DisplayConfig struct {
	TickMS    int `koanf:"tick_ms"`    // touch poll period (default: 50)
	RefreshMS int `koanf:"refresh_ms"` // clock/countdown redraw period (default: 1000)
}

// TouchConfig selects the touch input.
type TouchConfig struct {
	Driver  string `koanf:"driver"`  // "pointer" (terminal mouse) or "gt911"
	Bus     string `koanf:"bus"`     // I²C bus name, empty for the first bus
	Address int    `koanf:"address"` // I²C address (default: 0x5D)
}

// AudioConfig holds the adhan file.
type AudioConfig struct {
	Adhan  string `koanf:"adhan"`  // mp3 path (default: <data dir>/mawaqit/adhan.mp3)
	Volume *int   `koanf:"volume"` // percent (default: 80)
}

// WebConfig holds the HTTP API settings.
type WebConfig struct {
	Listen         string   `koanf:"listen"` // e.g. ":8080"
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// MQTTConfig holds the broker connection.
type MQTTConfig struct {
	Broker   string `koanf:"broker"` // e.g. "tcp://localhost:1883"
	ClientID string `koanf:"client_id"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Topic    string `koanf:"topic"` // prefix (default: mawaqit)
}

// RefreshConfig holds the cron specs of the schedule refresh.
type RefreshConfig struct {
	Every string `koanf:"every"` // default: @every 1h
	Daily string `koanf:"daily"` // default: 1 0 * * *
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level (default: info)
	File  string `koanf:"file"`  // default: <state dir>/mawaqit/mawaqit.log
}

// Environment variables overriding the file configuration.
const (
	EnvMosqueID   = "MAWAQIT_MOSQUE_ID"
	EnvMosqueName = "MAWAQIT_MOSQUE_NAME"
	EnvTimezone   = "MAWAQIT_TIMEZONE"
	EnvWebListen  = "MAWAQIT_WEB_LISTEN"
	EnvMQTTBroker = "MAWAQIT_MQTT_BROKER"
	EnvLogLevel   = "MAWAQIT_LOG_LEVEL"
)

func Load() (*Config, error) {
	// .env is optional
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)

	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")
	cfg.Audio.Adhan = expandPath(cfg.Audio.Adhan)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	set(&cfg.Mosque.ID, EnvMosqueID)
	set(&cfg.Mosque.Name, EnvMosqueName)
	set(&cfg.Timezone, EnvTimezone)
	set(&cfg.Web.Listen, EnvWebListen)
	set(&cfg.MQTT.Broker, EnvMQTTBroker)
	set(&cfg.Log.Level, EnvLogLevel)
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/mawaqit/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasMosque returns true if a mosque is configured.
func (c *Config) HasMosque() bool {
	return c.Mosque.ID != "" || c.Mosque.Name != ""
}

// HasWeb returns true if the HTTP API is enabled.
func (c *Config) HasWeb() bool {
	return c.Web.Listen != ""
}

// HasMQTT returns true if MQTT publishing is configured.
func (c *Config) HasMQTT() bool {
	return c.MQTT.Broker != ""
}

// GetAPIConfig returns the API configuration with defaults applied.
func (c *Config) GetAPIConfig() APIConfig {
	cfg := c.API
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://mawaqit.net/api/2.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10
	}
	return cfg
}

// APITimeout returns the HTTP timeout.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.GetAPIConfig().Timeout) * time.Second
}

// GetDisplayConfig returns the display configuration with defaults applied.
func (c *Config) GetDisplayConfig() DisplayConfig {
	cfg := c.Display
	if cfg.TickMS <= 0 {
		cfg.TickMS = 50
	}
	if cfg.RefreshMS <= 0 {
		cfg.RefreshMS = 1000
	}
	// A refresh faster than the tick cannot be honored.
	if cfg.RefreshMS < cfg.TickMS {
		cfg.RefreshMS = cfg.TickMS
	}
	return cfg
}

// TickInterval returns the loop period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.GetDisplayConfig().TickMS) * time.Millisecond
}

// RefreshInterval returns the clock/countdown redraw period.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.GetDisplayConfig().RefreshMS) * time.Millisecond
}

// GetTouchConfig returns the touch configuration with defaults applied.
func (c *Config) GetTouchConfig() TouchConfig {
	cfg := c.Touch
	cfg.Driver = strings.ToLower(cfg.Driver)
	if cfg.Driver != "gt911" {
		cfg.Driver = "pointer"
	}
	if cfg.Address <= 0 {
		cfg.Address = 0x5D
	}
	return cfg
}

// AdhanPath returns the adhan mp3 path, under the XDG data directory by
// default.
func (c *Config) AdhanPath() (string, error) {
	if c.Audio.Adhan != "" {
		return c.Audio.Adhan, nil
	}
	return xdg.DataFile(filepath.Join(appName, "adhan.mp3"))
}

// AudioVolume returns the adhan volume in percent (default: 80).
func (c *Config) AudioVolume() int {
	if c.Audio.Volume == nil {
		return 80
	}
	return min(max(*c.Audio.Volume, 0), 100)
}

// GetMQTTConfig returns the MQTT configuration with defaults applied.
func (c *Config) GetMQTTConfig() MQTTConfig {
	cfg := c.MQTT
	if cfg.ClientID == "" {
		cfg.ClientID = appName + "-display"
	}
	cfg.Topic = strings.Trim(cfg.Topic, "/")
	if cfg.Topic == "" {
		cfg.Topic = appName
	}
	return cfg
}

// GetRefreshConfig returns the refresh schedule with defaults applied.
func (c *Config) GetRefreshConfig() RefreshConfig {
	cfg := c.Refresh
	if cfg.Every == "" {
		cfg.Every = "@every 1h"
	}
	if cfg.Daily == "" {
		cfg.Daily = "1 0 * * *"
	}
	return cfg
}

// LogLevel returns the configured level name (default: info).
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Log.Level)
}
