package wirespin

import (
	"fmt"
	"sort"
)

// Edge is an undirected vertex pair stored with A <= B.
type Edge struct {
	A int
	B int
}

// NewEdge canonicalizes the pair so that (2,1) and (1,2) are the same edge.
func NewEdge(v1, v2 int) Edge {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	return Edge{A: v1, B: v2}
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.A, e.B)
}

func (e Edge) less(o Edge) bool {
	if e.A != o.A {
		return e.A < o.A
	}
	return e.B < o.B
}

// Mesh is a loaded model: vertex positions, faces as vertex index lists and
// the wireframe edges derived from those faces.
type Mesh struct {
	Vertices []Point3
	Faces    [][]int
	Edges    []Edge
}

func NewMesh() *Mesh {
	return &Mesh{
		Vertices: make([]Point3, 0),
		Faces:    make([][]int, 0),
		Edges:    make([]Edge, 0),
	}
}

// Empty reports whether the mesh has no vertices, which is how a failed load
// looks to callers.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Vertices) == 0
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p Point3) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

// AddFace appends a face. Edges are not touched; call DeriveEdges when done.
func (m *Mesh) AddFace(indices []int) {
	face := make([]int, len(indices))
	copy(face, indices)
	m.Faces = append(m.Faces, face)
}

// DeriveEdges rebuilds Edges from Faces.
func (m *Mesh) DeriveEdges() {
	m.Edges = DeriveEdges(m.Faces)
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (Bounds, bool) {
	if m == nil {
		return Bounds{}, false
	}
	return ComputeBounds(m.Vertices)
}

// Validate checks that every face and edge index points at a vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for fi, face := range m.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d: vertex index %d out of range [0,%d)", fi, idx, n)
			}
		}
	}
	for _, e := range m.Edges {
		if e.A < 0 || e.B >= n || e.A > e.B {
			return fmt.Errorf("edge %v invalid for %d vertices", e, n)
		}
	}
	return nil
}

func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Vertices: make([]Point3, len(m.Vertices)),
		Faces:    make([][]int, len(m.Faces)),
		Edges:    make([]Edge, len(m.Edges)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Edges, m.Edges)
	for i, f := range m.Faces {
		c.Faces[i] = append([]int(nil), f...)
	}
	return c
}

// DeriveEdges walks every face's consecutive index pairs, including the
// last-to-first wrap, and returns the distinct undirected edges sorted by (A, B).
// Faces with fewer than two indices add nothing, and neither do pairs that
// repeat the same vertex.
func DeriveEdges(faces [][]int) []Edge {
	seen := make(map[Edge]struct{})
	for _, face := range faces {
		if len(face) < 2 {
			continue
		}
		for _, pair := range LoopPairs(face) {
			if pair[0] == pair[1] {
				continue
			}
			seen[NewEdge(pair[0], pair[1])] = struct{}{}
		}
	}

	edges := make([]Edge, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].less(edges[j])
	})
	return edges
}
