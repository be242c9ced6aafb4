// Package config provides configuration management for festival-bands.
//
// This package handles:
//   - Loading settings from a JSON file with environment overrides
//   - Saving settings to a JSON file
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads kaustinen_2025_bands.json from the working directory
//	// Renders styled text
//
// # Loading from File
//
//	settings, err := config.Load("~/.config/festival-bands/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Every key can be overridden from the environment with the
// FESTIVAL_BANDS_ prefix, e.g. FESTIVAL_BANDS_DATASET=https://example.com/bands.json.
//
// # Saving Settings
//
//	settings.Dataset = "https://example.com/kaustinen_2025_bands.json"
//	err := settings.Save("/path/to/config.json")
package config
