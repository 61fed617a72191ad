// Package app holds the ambient, JSON-backed configuration surface: window
// sizing, frontend backend choice, and key bindings. Trimmed from a much
// larger configuration surface down to window, backend and key-binding
// settings; the emulation core reads none of it.
package app

import (
	"encoding/json"
	"os"
)

// WindowConfig is the windowed frontend's size/scale preference.
type WindowConfig struct {
	Scale      int  `json:"scale"`
	Fullscreen bool `json:"fullscreen"`
}

// KeyMapping maps keyboard keys to NES controller buttons for port 0, per
// the default bindings A=N, B=M, Start=J, Select=H, Up=W, Left=A, Down=S,
// Right=D.
type KeyMapping struct {
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	A      string `json:"a"`
	B      string `json:"b"`
	Start  string `json:"start"`
	Select string `json:"select"`
}

// Config is the whole on-disk configuration document.
type Config struct {
	Window  WindowConfig `json:"window"`
	Backend string       `json:"backend"` // "ebiten" or "tui"
	Keys    KeyMapping   `json:"keys"`
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	return &Config{
		Window:  WindowConfig{Scale: 3, Fullscreen: false},
		Backend: "ebiten",
		Keys: KeyMapping{
			Up: "W", Down: "S", Left: "A", Right: "D",
			A: "N", B: "M", Start: "J", Select: "H",
		},
	}
}

// LoadFromFile reads a JSON config from path; a missing file is not an
// error — it yields Default().
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToFile writes cfg as indented JSON to path.
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
