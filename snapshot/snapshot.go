// Package snapshot renders frames of the spinning model to PNG files without
// opening a window.
package snapshot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/smasonuk/wirespin"
	"github.com/smasonuk/wirespin/internal/logger"
)

// Options controls how many frames are written and where.
type Options struct {
	Frames    int
	OutDir    string
	Width     int
	Height    int
	LineWidth float64
}

// Canvas draws wirespin frames onto a gg context. Stroke errors are kept and
// returned by Err.
type Canvas struct {
	dc  *gg.Context
	err error
}

func NewCanvas(width, height int, lineWidth float64) *Canvas {
	dc := gg.NewContext(width, height)
	if lineWidth <= 0 {
		lineWidth = 1
	}
	dc.SetLineWidth(lineWidth)
	return &Canvas{dc: dc}
}

func (c *Canvas) Clear(clr color.Color) {
	c.dc.ClearWithColor(gg.FromColor(clr))
}

func (c *Canvas) SetColor(clr color.Color) {
	c.dc.SetColor(clr)
}

func (c *Canvas) Line(a, b wirespin.Point3) {
	x0, y0 := c.toScreen(a)
	x1, y1 := c.toScreen(b)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.stroke()
}

func (c *Canvas) LineLoop(points []wirespin.Point3) {
	if len(points) < 2 {
		return
	}
	x, y := c.toScreen(points[0])
	c.dc.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = c.toScreen(p)
		c.dc.LineTo(x, y)
	}
	c.dc.ClosePath()
	c.stroke()
}

func (c *Canvas) stroke() {
	if err := c.dc.Stroke(); err != nil {
		c.err = multierr.Append(c.err, err)
	}
}

func (c *Canvas) toScreen(p wirespin.Point3) (float64, float64) {
	return wirespin.ToScreen(p, float64(c.dc.Width()), float64(c.dc.Height()))
}

// Err returns every stroke error since the last call and clears them.
func (c *Canvas) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) At(x, y int) color.Color {
	return c.dc.Image().At(x, y)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}

// FrameName is the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.png", i)
}

// Render draws opts.Frames consecutive frames of state, advancing it after
// each one, and writes them to opts.OutDir. It returns the written paths.
func Render(state *wirespin.RenderState, opts Options) ([]string, error) {
	if opts.Frames < 1 {
		return nil, fmt.Errorf("frame count must be at least 1, got %d", opts.Frames)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	canvas := NewCanvas(opts.Width, opts.Height, opts.LineWidth)
	defer canvas.Close()

	paths := make([]string, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		f := state.Render(canvas)
		if err := canvas.Err(); err != nil {
			return paths, fmt.Errorf("drawing frame %d: %w", i, err)
		}

		path := filepath.Join(opts.OutDir, FrameName(i))
		if err := canvas.SavePNG(path); err != nil {
			return paths, fmt.Errorf("saving frame %d: %w", i, err)
		}
		paths = append(paths, path)

		logger.Debug("frame written",
			zap.String("path", path),
			zap.Float64("angle", state.Angle()),
			zap.Int("lines", len(f.Lines)),
			zap.Int("loops", len(f.Loops)),
			zap.Int("culled", f.Culled),
		)
		state.Advance()
	}

	logger.Info("Snapshots written", zap.Int("frames", len(paths)), zap.String("dir", opts.OutDir))
	return paths, nil
}
