// Package config loads engine configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds engine settings for a host application.
type Config struct {
	// BindingsPath is the persisted bindings JSON file.
	BindingsPath string `toml:"bindings_path"`

	// ScriptPath is an optional Lua bindings script, evaluated when no
	// bindings file exists yet.
	ScriptPath string `toml:"script_path"`

	// TickRate is how many update ticks run per second.
	TickRate int `toml:"tick_rate"`

	// HoldWindowMS is how long a terminal key press counts as held, in
	// milliseconds. Terminals report no key-up events, so the demo
	// provider expires presses after this window.
	HoldWindowMS int `toml:"hold_window_ms"`

	// WatchBindings reloads the bindings file when it changes on disk.
	WatchBindings bool `toml:"watch_bindings"`

	// Devices toggles polling per device class.
	Devices DeviceConfig `toml:"devices"`
}

// DeviceConfig toggles which device classes are polled.
type DeviceConfig struct {
	Keyboard bool `toml:"keyboard"`
	Mouse    bool `toml:"mouse"`
	Gamepad  bool `toml:"gamepad"`
	Touch    bool `toml:"touch"`
	Gesture  bool `toml:"gesture"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BindingsPath:  "bindings.json",
		TickRate:      60,
		HoldWindowMS:  250,
		WatchBindings: true,
		Devices: DeviceConfig{
			Keyboard: true,
			Mouse:    true,
			Gamepad:  true,
			Touch:    true,
			Gesture:  true,
		},
	}
}

// Load reads configuration from a TOML file, layered over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.TickRate <= 0 {
		cfg.TickRate = Default().TickRate
	}
	if cfg.HoldWindowMS <= 0 {
		cfg.HoldWindowMS = Default().HoldWindowMS
	}
	return cfg, nil
}

// TickInterval returns the duration of one tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// HoldWindow returns the terminal key hold window as a duration.
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMS) * time.Millisecond
}
