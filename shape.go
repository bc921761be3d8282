package wirespin

// Shape is what the frame driver draws: vertices plus index paths. A path of
// two indices is a line segment, a longer one is a closed loop.
type Shape struct {
	Vertices []Point3
	Paths    [][]int
}

// ShapeFromMesh turns every mesh edge into a two-index path.
func ShapeFromMesh(m *Mesh) Shape {
	paths := make([][]int, len(m.Edges))
	for i, e := range m.Edges {
		paths[i] = []int{e.A, e.B}
	}
	return Shape{Vertices: m.Vertices, Paths: paths}
}

// DefaultCube is drawn when no mesh could be loaded: a cube of side 0.5
// centered at the origin, two face loops joined by four edges.
func DefaultCube() Shape {
	return Shape{
		Vertices: []Point3{
			{X: 0.25, Y: 0.25, Z: 0.25},
			{X: -0.25, Y: 0.25, Z: 0.25},
			{X: -0.25, Y: -0.25, Z: 0.25},
			{X: 0.25, Y: -0.25, Z: 0.25},

			{X: 0.25, Y: 0.25, Z: -0.25},
			{X: -0.25, Y: 0.25, Z: -0.25},
			{X: -0.25, Y: -0.25, Z: -0.25},
			{X: 0.25, Y: -0.25, Z: -0.25},
		},
		Paths: [][]int{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
			{0, 4},
			{1, 5},
			{2, 6},
			{3, 7},
		},
	}
}

// SegmentCount is the number of line segments the shape draws.
func (s Shape) SegmentCount() int {
	n := 0
	for _, p := range s.Paths {
		switch {
		case len(p) == 2:
			n++
		case len(p) > 2:
			n += len(p)
		}
	}
	return n
}
