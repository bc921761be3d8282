package wirespin

import "image/color"

var (
	ColorBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorCyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// Renderer is the drawing backend a frame is handed to. Points are projected
// coordinates where the visible area spans roughly -1..1 on both axes.
type Renderer interface {
	Clear(c color.Color)
	SetColor(c color.Color)
	Line(a, b Point3)
	LineLoop(points []Point3)
}

// Frame is everything needed to draw one image of the model.
type Frame struct {
	Background color.Color
	Foreground color.Color
	Lines      [][2]Point3
	Loops      [][]Point3
	Culled     int // segments dropped entirely behind the near plane
}

// Draw issues the frame's primitives to r.
func (f *Frame) Draw(r Renderer) {
	r.Clear(f.Background)
	r.SetColor(f.Foreground)
	for _, l := range f.Lines {
		r.Line(l[0], l[1])
	}
	for _, loop := range f.Loops {
		r.LineLoop(loop)
	}
}

// ToScreen maps a projected point to pixel coordinates in a w x h image, with
// +Y pointing up on screen.
func ToScreen(p Point3, w, h float64) (float64, float64) {
	return (p.X + 1) / 2 * w, (1 - p.Y) / 2 * h
}
