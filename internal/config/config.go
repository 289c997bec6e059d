// Package config holds the run-time settings of the relayout tool.
package config

import (
	"errors"
	"fmt"
	"image/png"
	"strconv"

	stripimage "comic-relayout/internal/image"
	"comic-relayout/internal/layout"

	"github.com/shouni/go-utils/envutil"
)

// Default values.
const (
	DefaultPadding     = layout.DefaultPadding
	DefaultCompression = "best"
)

// Environment variables consulted by LoadConfig.
const (
	EnvPadding     = "COMIC_PADDING"
	EnvCompression = "COMIC_COMPRESSION"
)

// Config holds the settings of a single run.
type Config struct {
	InputPath   string // Comic strip image
	OutputDir   string // Directory receiving <cols>x<rows>.png files
	Padding     int    // Gap between panels, in pixels
	Compression string // PNG compression: default, none, fast or best
	Verbose     bool
}

// LoadConfig returns a Config with defaults overridden by the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Padding:     DefaultPadding,
		Compression: DefaultCompression,
	}

	// Set but empty variables count as unset.
	if s := envutil.GetEnv(EnvCompression, ""); s != "" {
		cfg.Compression = s
	}

	if s := envutil.GetEnv(EnvPadding, ""); s != "" {
		padding, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvPadding, s, err)
		}
		cfg.Padding = padding
	}
	return cfg, nil
}

// Validate checks that cfg describes a runnable job and returns the PNG
// compression level it selects.
func (c *Config) Validate() (png.CompressionLevel, error) {
	if c.InputPath == "" {
		return 0, errors.New("input image path is required")
	}
	if c.OutputDir == "" {
		return 0, errors.New("output directory is required")
	}
	if c.Padding < 0 {
		return 0, fmt.Errorf("invalid padding %d: %w", c.Padding, layout.ErrInvalidPadding)
	}
	return stripimage.ParseCompression(c.Compression)
}
