// Package config loads the game's YAML configuration: window geometry,
// action bindings, gamepad deadzones and logging.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Gamepad GamepadConfig `yaml:"gamepad"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type InputConfig struct {
	// BufferSeconds is the press-buffer window applied to every
	// press-mode action.
	BufferSeconds float64        `yaml:"buffer_seconds"`
	Actions       []ActionConfig `yaml:"actions"`
}

type ActionConfig struct {
	Name    string   `yaml:"name"`
	Keys    []string `yaml:"keys"`
	Buttons []string `yaml:"buttons"`
	Mode    string   `yaml:"mode"` // "hold" (default) or "press"
	Chord   bool     `yaml:"chord"`
}

type GamepadConfig struct {
	DeadzoneInner float64 `yaml:"deadzone_inner"`
	DeadzoneOuter float64 `yaml:"deadzone_outer"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML file over the defaults, so a partial file only
// overrides the sections it names.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the stock configuration: an 800x600 window, the four
// indicator actions the demo scene draws, and the player's movement
// bindings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "jumpbox"},
		Input: InputConfig{
			BufferSeconds: 0.1,
			Actions: []ActionConfig{
				{Name: "hold", Keys: []string{"z"}, Buttons: []string{"a", "left trigger"}},
				{Name: "hold chord", Keys: []string{"z", "x"}, Buttons: []string{"b", "left trigger full pull"}, Chord: true},
				{Name: "press", Keys: []string{"c"}, Buttons: []string{"x", "left stick click"}, Mode: "press"},
				{Name: "press chord", Keys: []string{"c", "v"}, Buttons: []string{"y", "right bumper"}, Mode: "press", Chord: true},
				{Name: "move left", Keys: []string{"a", "left"}},
				{Name: "move right", Keys: []string{"d", "right"}},
				{Name: "jump", Keys: []string{"space", "w", "up"}, Buttons: []string{"a"}, Mode: "press"},
			},
		},
		Gamepad: GamepadConfig{DeadzoneInner: 0.1, DeadzoneOuter: 0.05},
		Logging: LoggingConfig{Level: "info"},
	}
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.Input.BufferSeconds < 0 {
		return fmt.Errorf("input buffer %v seconds is negative", c.Input.BufferSeconds)
	}
	if c.Gamepad.DeadzoneInner < 0 || c.Gamepad.DeadzoneOuter < 0 ||
		c.Gamepad.DeadzoneInner+c.Gamepad.DeadzoneOuter >= 1 {
		return fmt.Errorf("deadzones inner=%v outer=%v must be non-negative and sum below 1",
			c.Gamepad.DeadzoneInner, c.Gamepad.DeadzoneOuter)
	}
	for _, a := range c.Input.Actions {
		if a.Name == "" {
			return fmt.Errorf("action with keys %v has no name", a.Keys)
		}
		switch a.Mode {
		case "", "hold", "press":
		default:
			return fmt.Errorf("action %q: unknown mode %q", a.Name, a.Mode)
		}
	}
	return nil
}
