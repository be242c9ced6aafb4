package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override settings,
// e.g. FESTIVAL_BANDS_DATASET.
const EnvPrefix = "FESTIVAL_BANDS"

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Settings holds all configuration options.
type Settings struct {
	// Dataset settings
	Dataset        string  `json:"dataset" mapstructure:"dataset"`
	RequestTimeout float64 `json:"request_timeout" mapstructure:"request_timeout"` // seconds
	UserAgent      string  `json:"user_agent" mapstructure:"user_agent"`

	// Output settings
	Title        string `json:"title" mapstructure:"title"`
	OutputFormat string `json:"output_format" mapstructure:"output_format"` // text, html
	AccentColor  string `json:"accent_color" mapstructure:"accent_color"`

	// Logging
	LogLevel string `json:"log_level" mapstructure:"log_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Dataset:        "kaustinen_2025_bands.json",
		RequestTimeout: 60,
		UserAgent:      "FestivalBands",

		Title:        "Kaustinen Folk Music Festival 2025",
		OutputFormat: FormatText,
		AccentColor:  "#FF6B6B",

		LogLevel: "info",
	}
}

// DefaultPath returns the default config file location,
// ~/.config/festival-bands/config.json.
func DefaultPath() (string, error) {
	return homedir.Expand(filepath.Join("~", ".config", "festival-bands", "config.json"))
}

// Load reads settings from a JSON file.
//
// Missing keys keep their defaults and a missing file yields the defaults.
// Environment variables with EnvPrefix override file values.
func Load(path string) (*Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, defaults)

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, err
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// setDefaults registers every field of defaults with v so that
// AutomaticEnv and Unmarshal know about all keys.
func setDefaults(v *viper.Viper, defaults *Settings) {
	v.SetDefault("dataset", defaults.Dataset)
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("title", defaults.Title)
	v.SetDefault("output_format", defaults.OutputFormat)
	v.SetDefault("accent_color", defaults.AccentColor)
	v.SetDefault("log_level", defaults.LogLevel)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
