// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultRootDirName is the directory created under the user's documents
	// folder when no root_dir is configured.
	DefaultRootDirName = "TiwutApps"

	// DefaultTerminalName is the default prompt name.
	DefaultTerminalName = "Tiwut"

	// DefaultCatMaxBytes is the default cap for full cat rendering (10 MiB).
	DefaultCatMaxBytes = 10 << 20
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidTerminalName is returned when the terminal name is blank.
	ErrInvalidTerminalName = errors.New("invalid terminal name")
	// ErrInvalidCatMaxBytes is returned when the cat byte cap is not positive.
	ErrInvalidCatMaxBytes = errors.New("invalid cat.max_bytes")
)

type (
	// ColorScheme selects how output styling adapts to the terminal background.
	ColorScheme string

	// TerminalConfig holds the prompt-facing settings.
	TerminalConfig struct {
		// Name is the prompt name shown before the path segment.
		Name string `mapstructure:"name" toml:"name"`
	}

	// UIConfig holds output-related settings.
	UIConfig struct {
		// ColorScheme is auto, dark, or light.
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging of command dispatch.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// CatConfig holds limits for the cat command.
	CatConfig struct {
		// MaxBytes is the file size above which cat truncates its output.
		MaxBytes int64 `mapstructure:"max_bytes" toml:"max_bytes"`
	}

	// Config is the full effective configuration.
	Config struct {
		// RootDir is the sandbox root. Empty means "derive from the
		// documents directory"; Load always fills it in.
		RootDir  string         `mapstructure:"root_dir" toml:"root_dir"`
		Terminal TerminalConfig `mapstructure:"terminal" toml:"terminal"`
		UI       UIConfig       `mapstructure:"ui" toml:"ui"`
		Cat      CatConfig      `mapstructure:"cat" toml:"cat"`
	}
)

// Validate checks a ColorScheme value.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: auto, dark, light)", ErrInvalidColorScheme, string(c))
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Terminal.Name) == "" {
		return ErrInvalidTerminalName
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	if c.Cat.MaxBytes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCatMaxBytes, c.Cat.MaxBytes)
	}
	return nil
}

// GlamourTheme maps the color scheme to a glamour standard style name.
// Empty means auto-detection.
func (c ColorScheme) GlamourTheme() string {
	switch c {
	case ColorSchemeDark:
		return "dark"
	case ColorSchemeLight:
		return "light"
	default:
		return ""
	}
}

// DefaultConfig returns the built-in defaults. RootDir is left empty here;
// Load derives it from the documents directory.
func DefaultConfig() *Config {
	return &Config{
		Terminal: TerminalConfig{Name: DefaultTerminalName},
		UI:       UIConfig{ColorScheme: ColorSchemeAuto, Verbose: false},
		Cat:      CatConfig{MaxBytes: DefaultCatMaxBytes},
	}
}
