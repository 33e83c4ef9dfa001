package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/ctxgrep/ctxgrep"
	"github.com/ctxgrep/ctxgrep/logging"
)

const (
	// DefaultBefore is the number of characters kept before a match.
	DefaultBefore = 500
	// DefaultAfter is the number of characters kept after the start of a match.
	DefaultAfter = 1500
)

//go:embed ctxgrep.toml
var DefaultConfig string

// Config is the search configuration: which terms to look for and how much
// surrounding text to keep.
type Config struct {
	Title      string   `koanf:"title"`
	MinVersion string   `koanf:"minVersion"`
	Terms      []string `koanf:"terms"`
	Before     int      `koanf:"before"`
	After      int      `koanf:"after"`
	Encoding   string   `koanf:"encoding"`

	// Path is where the config was loaded from, empty for the embedded default
	Path string `koanf:"-"`
}

// Default returns the embedded default configuration.
func Default() Config {
	cfg, err := Parse([]byte(DefaultConfig))
	if err != nil {
		panic(fmt.Sprintf("config: invalid default config: %v", err))
	}
	return cfg
}

// Parse reads a TOML config. Keys that are absent fall back to the package
// defaults; terms never fall back.
func Parse(data []byte) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), toml.Parser()); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if !k.Exists("before") {
		cfg.Before = DefaultBefore
	}
	if !k.Exists("after") {
		cfg.After = DefaultAfter
	}
	if !k.Exists("encoding") {
		cfg.Encoding = ctxgrep.DefaultEncoding
	}
	return cfg, nil
}

// LoadFile reads and parses the config at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ctxgrep.FileAccessError{Op: "read", Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	logging.Debug().Str("path", path).Int("terms", len(cfg.Terms)).Msg("loaded config")
	return cfg, nil
}

// Validate checks the config is usable for a scan.
func (c *Config) Validate() error {
	if len(c.Terms) == 0 {
		return errors.New("config: at least one term is required")
	}
	for i, term := range c.Terms {
		if term == "" {
			return fmt.Errorf("config: term %d is empty", i)
		}
	}
	if c.Before < 0 {
		return fmt.Errorf("config: before must not be negative, got %d", c.Before)
	}
	if c.After < 0 {
		return fmt.Errorf("config: after must not be negative, got %d", c.After)
	}
	if _, _, err := ctxgrep.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// CheckVersion fails when the config asks for a newer ctxgrep than current.
// Unparsable build versions (e.g. "dev") skip the check.
func (c *Config) CheckVersion(current string) error {
	if strings.TrimSpace(c.MinVersion) == "" {
		return nil
	}
	want, err := goversion.NewVersion(c.MinVersion)
	if err != nil {
		return fmt.Errorf("config: invalid minVersion %q: %w", c.MinVersion, err)
	}
	have, err := goversion.NewVersion(current)
	if err != nil {
		logging.Debug().Str("version", current).Msg("skipping minVersion check for unversioned build")
		return nil
	}
	if have.LessThan(want) {
		return fmt.Errorf("config requires ctxgrep %s or newer, running %s", want, have)
	}
	return nil
}
