package snapshot

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/smasonuk/wirespin"
)

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(8, 8, 1)
	defer c.Close()

	c.Clear(color.RGBA{R: 255, A: 255})
	if got := c.At(3, 3); !sameRGB(got, color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %v, want red", got)
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(64, 64, 3)
	defer c.Close()

	c.Clear(wirespin.ColorBlack)
	c.SetColor(wirespin.ColorCyan)
	// horizontal line through the middle of the image
	c.Line(wirespin.Point3{X: -0.8, Y: 0, Z: 1}, wirespin.Point3{X: 0.8, Y: 0, Z: 1})
	if err := c.Err(); err != nil {
		t.Fatalf("stroke: %v", err)
	}

	if got := c.At(32, 32); sameRGB(got, wirespin.ColorBlack) {
		t.Errorf("pixel on the line is still background: %v", got)
	}
	if got := c.At(32, 5); !sameRGB(got, wirespin.ColorBlack) {
		t.Errorf("pixel off the line was drawn: %v", got)
	}
}

func TestRenderWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	state := wirespin.NewRenderState(nil, wirespin.DefaultOptions())

	paths, err := Render(state, Options{Frames: 3, OutDir: dir, Width: 32, Height: 24, LineWidth: 1})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("wrote %d frames, want 3", len(paths))
	}
	if state.Frames() != 3 {
		t.Errorf("state advanced %d frames, want 3", state.Frames())
	}

	for i, p := range paths {
		if filepath.Base(p) != FrameName(i) {
			t.Errorf("frame %d written to %s", i, p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("reading %s: %v", p, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decoding %s: %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
			t.Errorf("frame %d is %dx%d, want 32x24", i, b.Dx(), b.Dy())
		}
	}
}

func TestRenderRejectsBadOptions(t *testing.T) {
	state := wirespin.NewRenderState(nil, wirespin.DefaultOptions())
	testCases := []struct {
		name string
		opts Options
	}{
		{"no frames", Options{Frames: 0, OutDir: t.TempDir(), Width: 8, Height: 8}},
		{"no width", Options{Frames: 1, OutDir: t.TempDir(), Width: 0, Height: 8}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Render(state, tc.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFrameName(t *testing.T) {
	if got := FrameName(7); got != "frame_0007.png" {
		t.Errorf("FrameName(7) = %s", got)
	}
}
