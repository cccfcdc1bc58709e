// Package config loads the dotstrap configuration from TOML, with
// built-in defaults so the tool runs with no config file at all.
package config

import (
	"bytes"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dotstrap/dotstrap/pkg/errors"
	"github.com/dotstrap/dotstrap/pkg/logging"
	"github.com/dotstrap/dotstrap/pkg/paths"
)

var log = logging.GetLogger("config")

// RepoConfig describes the dotfiles repository to bootstrap from
type RepoConfig struct {
	// URL is the clone URL of the dotfiles repository
	URL string `toml:"url"`

	// Branch selects a branch; empty means the remote default
	Branch string `toml:"branch"`

	// Path is the local clone destination; ~ is expanded
	Path string `toml:"path"`
}

// Config is the full dotstrap configuration. Scalar fields come before
// the repo table so Dump emits valid TOML in declaration order.
type Config struct {
	// ConfigRoot is the target root where unit symlinks are placed
	ConfigRoot string `toml:"config_root"`

	// Units are processed in the order listed
	Units []string `toml:"units"`

	Repo RepoConfig `toml:"repo"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Repo: RepoConfig{
			Path: paths.DefaultCloneDir(),
		},
		ConfigRoot: paths.DefaultConfigRoot(),
		Units:      []string{"hypr", "kitty", "waybar", "wofi", "dunst"},
	}
}

// Load reads the configuration file at path and merges it over the
// defaults. A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("No config file, using defaults")
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	if cfg.Repo.Path != "" {
		expanded, err := paths.ExpandHome(cfg.Repo.Path)
		if err != nil {
			return Config{}, err
		}
		cfg.Repo.Path = expanded
	}
	if cfg.ConfigRoot != "" {
		expanded, err := paths.ExpandHome(cfg.ConfigRoot)
		if err != nil {
			return Config{}, err
		}
		cfg.ConfigRoot = expanded
	}

	log.Debug().
		Str("path", path).
		Str("repo", cfg.Repo.URL).
		Int("units", len(cfg.Units)).
		Msg("Config loaded")

	return cfg, nil
}

// Validate checks invariants that hold for any command
func (c Config) Validate() error {
	if c.Repo.Path == "" {
		return errors.New(errors.ErrConfigValid, "repo.path must not be empty")
	}
	if c.ConfigRoot == "" {
		return errors.New(errors.ErrConfigValid, "config_root must not be empty")
	}
	for _, name := range c.Units {
		if name == "" {
			return errors.New(errors.ErrConfigValid, "unit names must not be empty")
		}
	}
	return nil
}

// Dump renders the configuration as TOML, used by genconfig
func (c Config) Dump() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}
	return string(out), nil
}
