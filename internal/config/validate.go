package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/smasonuk/wirespin"
)

// Validate reports every setting that is out of range, not just the first.
func (c *Config) Validate() error {
	var err error

	r := c.Render
	if !(r.FrameRate > 0) || math.IsInf(r.FrameRate, 0) {
		err = multierr.Append(err, fmt.Errorf("render.frame_rate must be positive, got %v", r.FrameRate))
	}
	if math.IsNaN(r.CameraDistance) || math.IsInf(r.CameraDistance, 0) {
		err = multierr.Append(err, fmt.Errorf("render.camera_distance must be finite, got %v", r.CameraDistance))
	}
	if !(r.MinDepth > 0) {
		err = multierr.Append(err, fmt.Errorf("render.min_depth must be positive, got %v", r.MinDepth))
	}
	if _, aerr := wirespin.ParseAxis(r.Axis); aerr != nil {
		err = multierr.Append(err, fmt.Errorf("render.axis: %w", aerr))
	}
	if _, cerr := ParseColor(r.Background); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("render.background: %w", cerr))
	}
	if _, cerr := ParseColor(r.Foreground); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("render.foreground: %w", cerr))
	}
	if !(r.LineWidth > 0) {
		err = multierr.Append(err, fmt.Errorf("render.line_width must be positive, got %v", r.LineWidth))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("snapshot size must be positive, got %dx%d", c.Snapshot.Width, c.Snapshot.Height))
	}
	if c.Snapshot.Frames < 1 {
		err = multierr.Append(err, fmt.Errorf("snapshot.frames must be at least 1, got %d", c.Snapshot.Frames))
	}

	if _, lerr := zapcore.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging.level: %w", lerr))
	}

	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ParseColor reads "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The leading
// '#' is optional.
func ParseColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("invalid color %q", s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	return gg.Hex(h).Color(), nil
}

// RenderOptions converts the render section into options for a RenderState.
func (c *Config) RenderOptions() (wirespin.Options, error) {
	axis, err := wirespin.ParseAxis(c.Render.Axis)
	if err != nil {
		return wirespin.Options{}, err
	}
	bg, err := ParseColor(c.Render.Background)
	if err != nil {
		return wirespin.Options{}, err
	}
	fg, err := ParseColor(c.Render.Foreground)
	if err != nil {
		return wirespin.Options{}, err
	}
	return wirespin.Options{
		FrameRate:      c.Render.FrameRate,
		CameraDistance: c.Render.CameraDistance,
		MinDepth:       c.Render.MinDepth,
		Axis:           axis,
		Background:     bg,
		Foreground:     fg,
	}, nil
}
