package wirespin

import (
	"image/color"
	"math"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func pointsAlmostEqual(a, b Point3) bool {
	return a.ApproxEqual(b, float64EqualityThreshold)
}

// recordingRenderer keeps every call so tests can inspect a drawn frame.
type recordingRenderer struct {
	cleared []color.Color
	colors  []color.Color
	lines   [][2]Point3
	loops   [][]Point3
}

func (r *recordingRenderer) Clear(c color.Color)    { r.cleared = append(r.cleared, c) }
func (r *recordingRenderer) SetColor(c color.Color) { r.colors = append(r.colors, c) }
func (r *recordingRenderer) Line(a, b Point3)       { r.lines = append(r.lines, [2]Point3{a, b}) }
func (r *recordingRenderer) LineLoop(points []Point3) {
	r.loops = append(r.loops, append([]Point3(nil), points...))
}
