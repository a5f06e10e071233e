// Package config loads file-based configuration for serve detection.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/henriquefukushima/serve-ai-analysis/internal/detect"
)

// Config holds the application configuration.
type Config struct {
	Detection detect.Config
	LogLevel  string
}

// fileConfig mirrors the TOML layout. Pointer fields distinguish "unset"
// from an explicit zero so file values layer over defaults.
type fileConfig struct {
	Detection struct {
		MinVisibility       *float64 `toml:"min_visibility"`
		MinServeDuration    *float64 `toml:"min_serve_duration"`
		MaxServeDuration    *float64 `toml:"max_serve_duration"`
		BufferSeconds       *float64 `toml:"buffer_seconds"`
		CooldownFrames      *int     `toml:"cooldown_frames"`
		MinGapSeconds       *float64 `toml:"min_gap_seconds"`
		ConfidenceThreshold *float64 `toml:"confidence_threshold"`
		HalfWindow          *int     `toml:"half_window"`
		PeakWindow          *int     `toml:"peak_window"`
		PeakTolerance       *int     `toml:"peak_tolerance"`
	} `toml:"detection"`
	Logging struct {
		Level string `toml:"level"`
	} `toml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Detection: detect.DefaultConfig(),
		LogLevel:  "info",
	}
}

// Load reads a TOML configuration file and layers it over the defaults.
// A missing file is not an error; the defaults are returned as-is. The
// resulting detection configuration is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	d := &cfg.Detection
	setFloat(&d.MinVisibility, fc.Detection.MinVisibility)
	setFloat(&d.MinServeDuration, fc.Detection.MinServeDuration)
	setFloat(&d.MaxServeDuration, fc.Detection.MaxServeDuration)
	setFloat(&d.BufferSeconds, fc.Detection.BufferSeconds)
	setInt(&d.CooldownFrames, fc.Detection.CooldownFrames)
	setFloat(&d.MinGapSeconds, fc.Detection.MinGapSeconds)
	setFloat(&d.ConfidenceThreshold, fc.Detection.ConfidenceThreshold)
	setInt(&d.HalfWindow, fc.Detection.HalfWindow)
	setInt(&d.PeakWindow, fc.Detection.PeakWindow)
	setInt(&d.PeakTolerance, fc.Detection.PeakTolerance)

	if fc.Logging.Level != "" {
		cfg.LogLevel = fc.Logging.Level
	}

	if err := cfg.Detection.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
