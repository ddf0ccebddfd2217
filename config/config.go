// Package config loads stickloop settings from a TOML file.
//
// Every field is optional; missing fields keep their Default value and
// unknown fields are rejected.
//
//	epsilon   = 1e-9
//	precision = 2
//	workers   = 4
//
//	[labels]
//	cycle     = "Kalyan"
//	reference = "Computer"
//	none      = "Abandoned"
//
//	[render]
//	width      = 800
//	height     = 800
//	padding    = 40.0
//	line_width = 2.0
//
//	[log]
//	level = "warn"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/stickloop/decision"
	"github.com/katalvlaran/stickloop/geom"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of settings.
type Config struct {
	Epsilon   float64 `toml:"epsilon"`
	Precision int     `toml:"precision"`
	Workers   int     `toml:"workers"` // 0 selects one per CPU

	Labels Labels `toml:"labels"`
	Render Render `toml:"render"`
	Log    Log    `toml:"log"`
}

// Labels are the words printed for each verdict.
type Labels struct {
	Cycle     string `toml:"cycle"`
	Reference string `toml:"reference"`
	None      string `toml:"none"`
}

// Render sizes the debug image, in pixels.
type Render struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Padding   float64 `toml:"padding"`
	LineWidth float64 `toml:"line_width"`
}

// Log holds the default log level: debug, info, warn or error.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	l := decision.DefaultLabels()

	return Config{
		Epsilon:   geom.DefaultEpsilon,
		Precision: geom.DefaultPrecision,
		Workers:   1,
		Labels:    Labels{Cycle: l.Cycle, Reference: l.Reference, None: l.None},
		Render:    Render{Width: 800, Height: 800, Padding: 40, LineWidth: 2},
		Log:       Log{Level: "warn"},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	c, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}

	return c, nil
}

// Decode reads TOML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return Config{}, fmt.Errorf("Decode: %s: %w", strings.TrimSpace(sme.String()), ErrInvalidConfig)
		}
		return Config{}, fmt.Errorf("Decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case !(c.Epsilon > 0) || c.Epsilon >= 1:
		return fmt.Errorf("Validate: epsilon %v not in (0, 1): %w", c.Epsilon, ErrInvalidConfig)
	case c.Precision < 0 || c.Precision > geom.MaxPrecision:
		return fmt.Errorf("Validate: precision %d not in [0, %d]: %w", c.Precision, geom.MaxPrecision, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("Validate: workers %d < 0: %w", c.Workers, ErrInvalidConfig)
	case c.Labels.Cycle == "" || c.Labels.Reference == "" || c.Labels.None == "":
		return fmt.Errorf("Validate: empty label: %w", ErrInvalidConfig)
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("Validate: render size %dx%d: %w", c.Render.Width, c.Render.Height, ErrInvalidConfig)
	case c.Render.Padding < 0 || c.Render.LineWidth <= 0:
		return fmt.Errorf("Validate: render padding %v line width %v: %w", c.Render.Padding, c.Render.LineWidth, ErrInvalidConfig)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// Kernel builds the geometry kernel described by c.
func (c Config) Kernel() geom.Kernel {
	return geom.NewKernel(geom.WithEpsilon(c.Epsilon), geom.WithPrecision(c.Precision))
}

// VerdictLabels converts c.Labels.
func (c Config) VerdictLabels() decision.Labels {
	return decision.Labels{Cycle: c.Labels.Cycle, Reference: c.Labels.Reference, None: c.Labels.None}
}

// SlogLevel parses l.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("Validate: log level %q: %w", l.Level, ErrInvalidConfig)
	}

	return lv, nil
}
