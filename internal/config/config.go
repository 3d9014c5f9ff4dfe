package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/hotkey/internal/logging"
)

// Action names.
const (
	ActionEcho  = "echo"
	ActionFocus = "focus"
	ActionQuit  = "quit"
	ActionLua   = "lua"
)

// Binding is one [[binding]] table.
type Binding struct {
	// Selector chooses the elements to bind.
	Selector string `toml:"selector"`

	// Keys is the combination text, e.g. "ctrl + alt + h".
	Keys string `toml:"keys"`

	// Action is what happens when the combination fires.
	Action string `toml:"action"`

	// Message is the text shown by the echo action.
	Message string `toml:"message,omitempty"`

	// Target is the selector focused by the focus action.
	Target string `toml:"target,omitempty"`

	// Script is the Lua source run by the lua action.
	Script string `toml:"script,omitempty"`

	// PreventDefault suppresses the host default for matching keys.
	PreventDefault bool `toml:"prevent_default,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile receives log output. Empty means stderr.
	LogFile string `toml:"log_file,omitempty"`

	// Document is the path of the YAML element tree.
	Document string `toml:"document"`

	// Strict rejects combinations with more than one trigger key.
	Strict bool `toml:"strict"`

	// StatusLines bounds the number of status messages kept.
	StatusLines int `toml:"status_lines"`

	// Bindings are made in order at startup.
	Bindings []Binding `toml:"binding"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		StatusLines: 5,
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := parse(path, data)
	if err != nil {
		return Config{}, err
	}

	if cfg.Document != "" && !filepath.IsAbs(cfg.Document) {
		cfg.Document = filepath.Join(filepath.Dir(path), cfg.Document)
	}
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(filepath.Dir(path), cfg.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates configuration data.
func Parse(data []byte) (Config, error) {
	cfg, err := parse("<data>", data)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parse(path string, data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		perr := &ParseError{Path: path, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Config{}, perr
	}

	return cfg, nil
}

// Validate checks the configuration. Every problem is reported; the
// returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error

	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, &ValidationError{Field: "log_level", Msg: fmt.Sprintf("unknown level %q", c.LogLevel)})
	}
	if c.StatusLines < 1 {
		errs = append(errs, &ValidationError{Field: "status_lines", Msg: "must be at least 1"})
	}

	for i, b := range c.Bindings {
		field := func(name string) string {
			return fmt.Sprintf("binding[%d].%s", i, name)
		}
		if strings.TrimSpace(b.Selector) == "" {
			errs = append(errs, &ValidationError{Field: field("selector"), Msg: "required"})
		}
		if strings.TrimSpace(b.Keys) == "" {
			errs = append(errs, &ValidationError{Field: field("keys"), Msg: "required"})
		}

		switch b.Action {
		case ActionEcho, ActionQuit:
		case ActionFocus:
			if strings.TrimSpace(b.Target) == "" {
				errs = append(errs, &ValidationError{Field: field("target"), Msg: "required for focus"})
			}
		case ActionLua:
			if strings.TrimSpace(b.Script) == "" {
				errs = append(errs, &ValidationError{Field: field("script"), Msg: "required for lua"})
			}
		case "":
			errs = append(errs, &ValidationError{Field: field("action"), Msg: "required"})
		default:
			errs = append(errs, &ValidationError{Field: field("action"), Msg: fmt.Sprintf("unknown action %q", b.Action)})
		}
	}

	return errors.Join(errs...)
}

// Level returns the parsed log level.
func (c Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// Encode writes the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
