// Package config loads vista's TOML configuration. Every field has a
// built-in default; the file only needs the settings the user wants to
// change, and a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-runewidth"

	"github.com/lunehart/vista/canvas"
)

// Config is the root of the configuration file.
type Config struct {
	UI    UIConfig          `toml:"ui"`
	Scene SceneConfig       `toml:"scene"`
	Keys  KeyMappings[keys] `toml:"keys"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Background is the glyph for cells no shape covers. One cell wide.
	Background string `toml:"background"`
	// SquareCells pads every cell with a trailing space. Terminal cells
	// are roughly twice as tall as wide; doubling restores the aspect
	// ratio so circles look round.
	SquareCells bool `toml:"square_cells"`
	// PanStep and PanStepFast are pan distances in cells.
	PanStep     int `toml:"pan_step"`
	PanStepFast int `toml:"pan_step_fast"`
	// Sidebar shows the shape list on startup.
	Sidebar bool `toml:"sidebar"`
	// Monochrome disables per-shape coloring.
	Monochrome bool `toml:"monochrome"`
}

// SceneConfig points at an optional Lua scene file. When empty, the
// built-in demo scene is shown.
type SceneConfig struct {
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Background:  string(canvas.DefaultBackground),
			SquareCells: true,
			PanStep:     1,
			PanStepFast: 5,
		},
		Keys: defaultKeys(),
	}
}

// Path returns the configuration file location: $VISTA_CONFIG when set,
// otherwise vista/config.toml under the user configuration directory.
func Path() (string, error) {
	if p := os.Getenv("VISTA_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "vista", "config.toml"), nil
}

// Load reads the configuration file over the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// BackgroundRune returns the configured background glyph. Values that are
// not exactly one terminal cell wide fall back to the default.
func (c *Config) BackgroundRune() rune {
	return glyphOf(c.UI.Background, canvas.DefaultBackground)
}

func glyphOf(s string, fallback rune) rune {
	r := []rune(s)
	if len(r) != 1 || runewidth.RuneWidth(r[0]) != 1 {
		return fallback
	}
	return r[0]
}
