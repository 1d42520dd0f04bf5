// Package config loads worddiff settings from a TOML file and validates them.
//
// Settings are layered: Default values, then the file, then whatever the caller applies on top (command-line flags). A missing default file is not an error;
// a missing file that was named explicitly is.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/codalotl/worddiff/internal/byword"
	"github.com/codalotl/worddiff/internal/lcs"
	"github.com/codalotl/worddiff/internal/simplelogger"
)

const (
	// AppName is the directory under the user config dir holding the config file.
	AppName = "worddiff"
	// FileName is the config file name.
	FileName = "config.toml"

	// DefaultContext is the number of unchanged lines around each unified hunk.
	DefaultContext = 3
)

// ErrInvalidValue is wrapped by errors about a setting that has an unusable value.
var ErrInvalidValue = errors.New("invalid value")

// View selects how a comparison is printed.
type View int

const (
	ViewUnified View = iota
	ViewInline
	ViewSideBySide
	ViewBlocks
)

func (v View) String() string {
	switch v {
	case ViewUnified:
		return "unified"
	case ViewInline:
		return "inline"
	case ViewSideBySide:
		return "side-by-side"
	case ViewBlocks:
		return "blocks"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView parses the String form of a View. Case and '_' versus '-' are ignored.
func ParseView(s string) (View, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "unified", "":
		return ViewUnified, nil
	case "inline", "wdiff":
		return ViewInline, nil
	case "side-by-side", "side":
		return ViewSideBySide, nil
	case "blocks":
		return ViewBlocks, nil
	default:
		return 0, fmt.Errorf("unknown view %q (want unified, inline, side-by-side, or blocks)", s)
	}
}

// ColorMode selects whether output carries ANSI escapes.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (c ColorMode) String() string {
	switch c {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(c))
	}
}

// ParseColorMode parses the String form of a ColorMode, ignoring case.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "yes", "on":
		return ColorAlways, nil
	case "never", "no", "off":
		return ColorNever, nil
	default:
		return 0, fmt.Errorf("unknown color mode %q (want auto, always, or never)", s)
	}
}

// Enabled reports whether to colorize, given whether output goes to a terminal.
func (c ColorMode) Enabled(terminal bool) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// Config holds resolved settings.
type Config struct {
	Policy    byword.Policy
	Algorithm lcs.Algorithm
	View      View
	Context   int
	Color     ColorMode

	// Width is the side-by-side output width in terminal cells. 0 means use the terminal width.
	Width int
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Policy:    byword.PolicyDefault,
		Algorithm: lcs.AlgorithmMyers,
		View:      ViewUnified,
		Context:   DefaultContext,
		Color:     ColorAuto,
	}
}

// fileConfig mirrors the TOML file. Pointer fields distinguish an absent key from a zero value.
type fileConfig struct {
	Policy    *string `toml:"policy"`
	Algorithm *string `toml:"algorithm"`
	View      *string `toml:"view"`
	Context   *int    `toml:"context"`
	Color     *string `toml:"color"`
	Width     *int    `toml:"width"`
}

// DefaultPath returns $XDG_CONFIG_HOME/worddiff/config.toml, or the platform equivalent from os.UserConfigDir.
func DefaultPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, AppName, FileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(dir, AppName, FileName), nil
}

// Load returns Default overlaid with the file at path. If path is empty, DefaultPath is used and a missing file yields Default unchanged.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			// No config dir (e.g. $HOME unset) just means no config file.
			simplelogger.Log("config: %v", err)
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			simplelogger.Log("config: no file at %s, using defaults", path)
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(string(data), Default())
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	simplelogger.Log("config: loaded %s (policy=%v algorithm=%v view=%v context=%d color=%v width=%d)", path, cfg.Policy, cfg.Algorithm, cfg.View, cfg.Context, cfg.Color, cfg.Width)
	return cfg, nil
}

// Parse decodes TOML data and overlays the keys it sets onto base. Unknown keys are logged and otherwise ignored.
func Parse(data string, base Config) (Config, error) {
	var fc fileConfig
	md, err := toml.Decode(data, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		simplelogger.Log("config: unrecognized keys: %v", undecoded)
	}

	cfg := base
	if err := fc.apply(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.Policy != nil {
		p, err := byword.ParsePolicy(*fc.Policy)
		if err != nil {
			return invalid("policy", err)
		}
		cfg.Policy = p
	}
	if fc.Algorithm != nil {
		a, err := lcs.ParseAlgorithm(*fc.Algorithm)
		if err != nil {
			return invalid("algorithm", err)
		}
		cfg.Algorithm = a
	}
	if fc.View != nil {
		v, err := ParseView(*fc.View)
		if err != nil {
			return invalid("view", err)
		}
		cfg.View = v
	}
	if fc.Context != nil {
		if err := checkContext(*fc.Context); err != nil {
			return invalid("context", err)
		}
		cfg.Context = *fc.Context
	}
	if fc.Color != nil {
		c, err := ParseColorMode(*fc.Color)
		if err != nil {
			return invalid("color", err)
		}
		cfg.Color = c
	}
	if fc.Width != nil {
		if err := checkWidth(*fc.Width); err != nil {
			return invalid("width", err)
		}
		cfg.Width = *fc.Width
	}
	return nil
}

// Validate checks settings that may have been set outside Parse.
func (c Config) Validate() error {
	if err := checkContext(c.Context); err != nil {
		return invalid("context", err)
	}
	if err := checkWidth(c.Width); err != nil {
		return invalid("width", err)
	}
	return nil
}

func checkContext(n int) error {
	if n < 0 {
		return fmt.Errorf("context must be >= 0, got %d", n)
	}
	return nil
}

func checkWidth(n int) error {
	if n < 0 {
		return fmt.Errorf("width must be >= 0, got %d", n)
	}
	return nil
}

func invalid(key string, err error) error {
	return fmt.Errorf("key %q: %w: %w", key, ErrInvalidValue, err)
}
