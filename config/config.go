// Package config loads citytour settings: YAML file first, then CITYTOUR_*
// environment overrides, then defaults for anything left unset.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SourceKind selects where the city set comes from.
type SourceKind string

const (
	SourceBuiltin SourceKind = "builtin"
	SourceRandom  SourceKind = "random"
	SourceGeoJSON SourceKind = "geojson"
	SourceOSM     SourceKind = "osm"
	SourceCatalog SourceKind = "catalog"
)

// Config aggregates application configuration values.
type Config struct {
	Viewer  Viewer  `yaml:"viewer"`
	Source  Source  `yaml:"source"`
	Catalog Catalog `yaml:"catalog"`
	Logging Logging `yaml:"logging"`
}

// Viewer holds the recognised viewer options.
type Viewer struct {
	CityCount  int     `yaml:"city-count"`
	NodeRadius float64 `yaml:"node-radius"`
	FPS        int     `yaml:"fps"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	// Frames stops the viewer after this many frames; 0 runs until cancelled.
	Frames int `yaml:"frames"`
}

// FrameInterval is the tick period for FPS.
func (v Viewer) FrameInterval() time.Duration {
	if v.FPS <= 0 {
		return 0
	}

	return time.Second / time.Duration(v.FPS)
}

// Source describes the city set to show.
type Source struct {
	Kind SourceKind `yaml:"kind"`
	// Path is the input file for geojson and osm sources.
	Path string `yaml:"path"`
	// Set names the stored set for the catalog source.
	Set string `yaml:"set"`
	// Seed drives the random source; 0 selects the fixed default.
	Seed int64 `yaml:"seed"`
}

// Catalog configures set persistence. An empty DSN keeps sets in memory.
type Catalog struct {
	DSN string `yaml:"dsn"`
}

// Logging controls structured logging settings.
type Logging struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include-caller"`
}

const (
	defaultCityCount  = 15
	defaultNodeRadius = 5
	defaultFPS        = 30
	defaultWidth      = 800
	defaultHeight     = 400
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
)

// MaxFPS is the highest accepted frame rate.
const MaxFPS = 240

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Viewer: Viewer{
			CityCount:  defaultCityCount,
			NodeRadius: defaultNodeRadius,
			FPS:        defaultFPS,
			Width:      defaultWidth,
			Height:     defaultHeight,
		},
		Source:  Source{Kind: SourceBuiltin},
		Logging: Logging{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = Parse(data); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes a YAML document on top of Default. Keys absent from the
// document keep their default values. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides fields from CITYTOUR_* variables.
func (c *Config) applyEnv() error {
	var err error
	if c.Viewer.CityCount, err = intFromEnv("CITYTOUR_CITY_COUNT", c.Viewer.CityCount); err != nil {
		return err
	}
	if c.Viewer.FPS, err = intFromEnv("CITYTOUR_FPS", c.Viewer.FPS); err != nil {
		return err
	}
	if c.Viewer.Frames, err = intFromEnv("CITYTOUR_FRAMES", c.Viewer.Frames); err != nil {
		return err
	}
	if v := os.Getenv("CITYTOUR_NODE_RADIUS"); v != "" {
		r, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return fmt.Errorf("invalid CITYTOUR_NODE_RADIUS %q: %w", v, ErrInvalidConfig)
		}
		c.Viewer.NodeRadius = r
	}
	if v := os.Getenv("CITYTOUR_SEED"); v != "" {
		s, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("invalid CITYTOUR_SEED %q: %w", v, ErrInvalidConfig)
		}
		c.Source.Seed = s
	}
	if v := os.Getenv("CITYTOUR_SOURCE"); v != "" {
		c.Source.Kind = SourceKind(strings.ToLower(v))
	}
	c.Source.Path = valueOrDefault("CITYTOUR_SOURCE_PATH", c.Source.Path)
	c.Source.Set = valueOrDefault("CITYTOUR_SOURCE_SET", c.Source.Set)
	c.Catalog.DSN = valueOrDefault("CITYTOUR_CATALOG_DSN", c.Catalog.DSN)
	c.Logging.Level = valueOrDefault("CITYTOUR_LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = valueOrDefault("CITYTOUR_LOG_FORMAT", c.Logging.Format)

	return nil
}

// Validate checks ranges and source requirements.
func (c Config) Validate() error {
	v := c.Viewer
	switch {
	case v.CityCount < 2:
		return fmt.Errorf("city-count %d: need at least 2: %w", v.CityCount, ErrInvalidConfig)
	case !PositiveFinite(v.NodeRadius):
		return fmt.Errorf("node-radius %g: must be positive and finite: %w", v.NodeRadius, ErrInvalidConfig)
	case v.FPS <= 0 || v.FPS > MaxFPS:
		return fmt.Errorf("fps %d: must be in [1, %d]: %w", v.FPS, MaxFPS, ErrInvalidConfig)
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("window %dx%d: must be positive: %w", v.Width, v.Height, ErrInvalidConfig)
	case v.Frames < 0:
		return fmt.Errorf("frames %d: must not be negative: %w", v.Frames, ErrInvalidConfig)
	}

	switch c.Source.Kind {
	case SourceBuiltin, SourceRandom:
	case SourceGeoJSON, SourceOSM:
		if c.Source.Path == "" {
			return fmt.Errorf("source %s needs a path: %w", c.Source.Kind, ErrInvalidConfig)
		}
	case SourceCatalog:
		if c.Source.Set == "" {
			return fmt.Errorf("source catalog needs a set name: %w", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown source %q: %w", c.Source.Kind, ErrInvalidConfig)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: want text or json: %w", c.Logging.Format, ErrInvalidConfig)
	}

	return nil
}

// PositiveFinite reports whether f is above zero and not +Inf. NaN fails.
func PositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, ErrInvalidConfig)
	}

	return n, nil
}
