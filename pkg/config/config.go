// Package config loads moodcal settings from .moodcal files and MOODCAL_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/moodcal/pkg/flags"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/store"
	"tableflip.dev/moodcal/pkg/window"
)

// Keys understood in the config file and, upper-cased with MOODCAL_, the
// environment.
const (
	KeyPath        = "path"
	KeyBackend     = "backend"
	KeyWindowStart = "window.start"
	KeyWindowEnd   = "window.end"
	KeyFlags       = "flags"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
)

var envReplacer = strings.NewReplacer(".", "_")

// EnvConfigPath names an extra directory searched for .moodcal.
const EnvConfigPath = "MOODCAL_CONFIG_PATH"

// Config is the resolved configuration.
type Config struct {
	Path        string `json:"path"`
	StoreKind   string `json:"backend"`
	WindowStart string `json:"windowStart"`
	WindowEnd   string `json:"windowEnd"`
	FlagSource  string `json:"flags"`
	LogLevel    string `json:"logLevel"`
	LogFormat   string `json:"logFormat"`
}

var _ store.Config = (*Config)(nil)

// Load reads .moodcal from $MOODCAL_CONFIG_PATH or the working directory. A
// missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".moodcal") // .yaml is implicit
	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	return FromViper(v), nil
}

// FromViper applies defaults and the environment to v and resolves it.
func FromViper(v *viper.Viper) *Config {
	SetDefaults(v)
	v.SetEnvPrefix("MOODCAL")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	return &Config{
		Path:        v.GetString(KeyPath),
		StoreKind:   v.GetString(KeyBackend),
		WindowStart: v.GetString(KeyWindowStart),
		WindowEnd:   v.GetString(KeyWindowEnd),
		FlagSource:  v.GetString(KeyFlags),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
	}
}

// SetDefaults registers the default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPath, "~/.moodcal.db")
	v.SetDefault(KeyBackend, store.BackendDiskv)
	v.SetDefault(KeyWindowStart, "2025-03")
	v.SetDefault(KeyWindowEnd, "2025-04")
	v.SetDefault(KeyFlags, flags.SourceRandom)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
}

// BasePath is the data directory with a leading ~ expanded.
func (c *Config) BasePath() string {
	p, err := homedir.Expand(c.Path)
	if err != nil {
		return c.Path
	}
	return p
}

// Backend names the slot backend.
func (c *Config) Backend() string {
	return c.StoreKind
}

// Window is the range of days open for mood entry.
func (c *Config) Window() (window.Window, error) {
	w, err := window.Parse(c.WindowStart, c.WindowEnd)
	if err != nil {
		return window.Window{}, fmt.Errorf("config: window: %w", err)
	}
	return w, nil
}

// Flags builds the journal/event marker provider, seeded from the clock.
func (c *Config) Flags() (flags.Provider, error) {
	return flags.FromName(c.FlagSource, time.Now().UnixNano())
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}
