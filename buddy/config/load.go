//go:build !tinygo

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"deskbuddy/hal"
)

// EnvPrefix namespaces the environment overrides.
const EnvPrefix = "DESKBUDDY_"

type yamlConfig struct {
	NumLEDs    *int  `yaml:"num_leds"`
	LEDPin     *int  `yaml:"led_pin"`
	ButtonPins *pins `yaml:"button_pins"`
	BuzzerPin  *int  `yaml:"buzzer_pin"`

	UTCOffsetHours *float64 `yaml:"utc_offset_hours"`
	Use24Hour      *bool    `yaml:"use_24_hour"`
	Color          *[3]int  `yaml:"color"`
	Brightness     *float64 `yaml:"brightness"`
	WorkMinutes    *int     `yaml:"work_minutes"`
	BreakMinutes   *int     `yaml:"break_minutes"`

	DebounceMillis   *int `yaml:"debounce_ms"`
	PollPeriodMillis *int `yaml:"poll_period_ms"`

	ResyncMinutes     *int    `yaml:"resync_minutes"`
	SyncTimeoutSecond *int    `yaml:"sync_timeout_seconds"`
	NTPServer         *string `yaml:"ntp_server"`

	ConnectTimeoutSecond *int `yaml:"connect_timeout_seconds"`
}

type pins struct {
	Mode int `yaml:"mode"`
	Up   int `yaml:"up"`
	Down int `yaml:"down"`
}

// Load builds the configuration from defaults, the YAML file at path (if
// any), the given .env files and finally the process environment, then
// validates the result.
//
// A missing file at path leaves the defaults in place, as do missing .env
// files.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	dotenv, err := readDotenv(envFiles)
	if err != nil {
		return cfg, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	applyYaml(cfg, fileData)
	return nil
}

func applyYaml(cfg *Config, f yamlConfig) {
	if f.NumLEDs != nil {
		cfg.NumLEDs = *f.NumLEDs
	}
	if f.LEDPin != nil {
		cfg.LEDPin = *f.LEDPin
	}
	if f.ButtonPins != nil {
		cfg.ButtonPins = [hal.ButtonCount]int{
			hal.ButtonMode: f.ButtonPins.Mode,
			hal.ButtonUp:   f.ButtonPins.Up,
			hal.ButtonDown: f.ButtonPins.Down,
		}
	}
	if f.BuzzerPin != nil {
		cfg.BuzzerPin = *f.BuzzerPin
	}

	if f.UTCOffsetHours != nil {
		cfg.UTCOffset = time.Duration(*f.UTCOffsetHours * float64(time.Hour))
	}
	if f.Use24Hour != nil {
		cfg.Use24Hour = *f.Use24Hour
	}
	if f.Color != nil {
		cfg.Color.R = channel(f.Color[0])
		cfg.Color.G = channel(f.Color[1])
		cfg.Color.B = channel(f.Color[2])
	}
	if f.Brightness != nil {
		cfg.Brightness = *f.Brightness
	}
	if f.WorkMinutes != nil {
		cfg.WorkDuration = time.Duration(*f.WorkMinutes) * time.Minute
	}
	if f.BreakMinutes != nil {
		cfg.BreakDuration = time.Duration(*f.BreakMinutes) * time.Minute
	}

	if f.DebounceMillis != nil {
		cfg.Debounce = time.Duration(*f.DebounceMillis) * time.Millisecond
	}
	if f.PollPeriodMillis != nil {
		cfg.PollPeriod = time.Duration(*f.PollPeriodMillis) * time.Millisecond
	}

	if f.ResyncMinutes != nil {
		cfg.ResyncInterval = time.Duration(*f.ResyncMinutes) * time.Minute
	}
	if f.SyncTimeoutSecond != nil {
		cfg.SyncTimeout = time.Duration(*f.SyncTimeoutSecond) * time.Second
	}
	if f.NTPServer != nil {
		cfg.NTPServer = *f.NTPServer
	}

	if f.ConnectTimeoutSecond != nil {
		cfg.ConnectTimeout = time.Duration(*f.ConnectTimeoutSecond) * time.Second
	}
}

// Save writes cfg as YAML to path, creating parent directories. Wi-Fi
// credentials are left out; they belong in .env.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(toYaml(cfg))
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func toYaml(cfg Config) yamlConfig {
	hours := cfg.UTCOffset.Hours()
	rgb := [3]int{int(cfg.Color.R), int(cfg.Color.G), int(cfg.Color.B)}
	work := int(cfg.WorkDuration / time.Minute)
	brk := int(cfg.BreakDuration / time.Minute)
	debounce := int(cfg.Debounce / time.Millisecond)
	poll := int(cfg.PollPeriod / time.Millisecond)
	resync := int(cfg.ResyncInterval / time.Minute)
	timeout := int(cfg.SyncTimeout / time.Second)
	connect := int(cfg.ConnectTimeout / time.Second)
	return yamlConfig{
		NumLEDs: &cfg.NumLEDs,
		LEDPin:  &cfg.LEDPin,
		ButtonPins: &pins{
			Mode: cfg.ButtonPins[hal.ButtonMode],
			Up:   cfg.ButtonPins[hal.ButtonUp],
			Down: cfg.ButtonPins[hal.ButtonDown],
		},
		BuzzerPin: &cfg.BuzzerPin,

		UTCOffsetHours: &hours,
		Use24Hour:      &cfg.Use24Hour,
		Color:          &rgb,
		Brightness:     &cfg.Brightness,
		WorkMinutes:    &work,
		BreakMinutes:   &brk,

		DebounceMillis:   &debounce,
		PollPeriodMillis: &poll,

		ResyncMinutes:     &resync,
		SyncTimeoutSecond: &timeout,
		NTPServer:         &cfg.NTPServer,

		ConnectTimeoutSecond: &connect,
	}
}

func channel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func readDotenv(files []string) (map[string]string, error) {
	merged := map[string]string{}
	for _, name := range files {
		vals, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		// Earlier files win, matching godotenv.Load.
		for k, v := range vals {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged, nil
}

// applyEnv overrides the network and topology values that differ per desk.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "WIFI_SSID"); ok {
		cfg.WiFiSSID = v
	}
	if v, ok := lookup(EnvPrefix + "WIFI_PASSWORD"); ok {
		cfg.WiFiPassword = v
	}
	if v, ok := lookup(EnvPrefix + "NTP_SERVER"); ok {
		cfg.NTPServer = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPrefix + "UTC_OFFSET"); ok {
		d, err := parseOffset(v)
		if err != nil {
			return fmt.Errorf("%w: %sUTC_OFFSET: %v", ErrInvalid, EnvPrefix, err)
		}
		cfg.UTCOffset = d
	}
	if v, ok := lookup(EnvPrefix + "NUM_LEDS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sNUM_LEDS: %v", ErrInvalid, EnvPrefix, err)
		}
		cfg.NumLEDs = n
	}
	return nil
}

// parseOffset accepts either a Go duration ("-5h30m") or whole hours ("-6").
func parseOffset(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if h, err := strconv.Atoi(s); err == nil {
		return time.Duration(h) * time.Hour, nil
	}
	return time.ParseDuration(s)
}
