package config

import (
	"errors"
	"testing"
	"time"

	"deskbuddy/hal"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate()=%v", err)
	}
	if cfg.NumLEDs != 30 || cfg.LEDPin != 16 || cfg.BuzzerPin != 12 {
		t.Fatalf("topology=%d/%d/%d; want 30/16/12", cfg.NumLEDs, cfg.LEDPin, cfg.BuzzerPin)
	}
	if cfg.ButtonPins != [hal.ButtonCount]int{14, 15, 13} {
		t.Fatalf("ButtonPins=%v; want [14 15 13]", cfg.ButtonPins)
	}
	if cfg.UTCOffset != -6*time.Hour {
		t.Fatalf("UTCOffset=%v; want -6h", cfg.UTCOffset)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"no leds", func(c *Config) { c.NumLEDs = 0 }},
		{"negative led pin", func(c *Config) { c.LEDPin = -1 }},
		{"offset", func(c *Config) { c.UTCOffset = 15 * time.Hour }},
		{"dark", func(c *Config) { c.Brightness = 0 }},
		{"too bright", func(c *Config) { c.Brightness = 1.5 }},
		{"short work", func(c *Config) { c.WorkDuration = 30 * time.Second }},
		{"short break", func(c *Config) { c.BreakDuration = 0 }},
		{"poll", func(c *Config) { c.PollPeriod = 0 }},
		{"debounce", func(c *Config) { c.Debounce = -time.Millisecond }},
		{"resync", func(c *Config) { c.ResyncInterval = 0 }},
		{"connect timeout", func(c *Config) { c.ConnectTimeout = 0 }},
		{"shared pin", func(c *Config) { c.ButtonPins[hal.ButtonUp] = c.ButtonPins[hal.ButtonMode] }},
		{"negative button", func(c *Config) { c.ButtonPins[hal.ButtonDown] = -3 }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mut(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: Validate()=%v; want ErrInvalid", tt.name, err)
		}
	}
}

func TestHALAndSettings(t *testing.T) {
	cfg := Default()
	hc := cfg.HAL()
	if hc.NumLEDs != cfg.NumLEDs || hc.LEDPin != cfg.LEDPin || hc.ButtonPins != cfg.ButtonPins ||
		hc.BuzzerPin != cfg.BuzzerPin || hc.NTPServer != cfg.NTPServer {
		t.Fatalf("HAL()=%+v does not mirror %+v", hc, cfg)
	}

	sd := cfg.Settings()
	if sd.Brightness != 0.4 || sd.WorkDuration != 25*time.Minute || sd.BreakDuration != 5*time.Minute {
		t.Fatalf("Settings()=%+v", sd)
	}
	if sd.Color != cfg.Color || sd.Use24Hour {
		t.Fatalf("Settings() clock=%v/%v", sd.Color, sd.Use24Hour)
	}
}
