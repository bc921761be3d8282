package wirespin

import (
	"reflect"
	"testing"
)

func meshOf(points ...Point3) *Mesh {
	m := NewMesh()
	for _, p := range points {
		m.AddVertex(p)
	}
	return m
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name       string
		mesh       *Mesh
		wantCenter Point3
		wantScale  float64
	}{
		{
			name:       "unit cube corners",
			mesh:       meshOf(Point3{-1, -1, -1}, Point3{1, 1, 1}),
			wantCenter: Point3{0, 0, 0},
			wantScale:  0.5,
		},
		{
			name:       "offset box",
			mesh:       meshOf(Point3{2, 0, 0}, Point3{6, 1, -1}, Point3{3, 2, 1}),
			wantCenter: Point3{4, 1, 0},
			wantScale:  0.25,
		},
		{
			name:       "flat along Z",
			mesh:       meshOf(Point3{0, 0, 5}, Point3{2, 1, 5}),
			wantCenter: Point3{1, 0.5, 5},
			wantScale:  0.5,
		},
		{
			name:       "single vertex",
			mesh:       meshOf(Point3{3, -4, 7}),
			wantCenter: Point3{3, -4, 7},
			wantScale:  1,
		},
		{
			name:       "empty mesh",
			mesh:       NewMesh(),
			wantCenter: Point3{},
			wantScale:  1,
		},
		{
			name:       "nil mesh",
			mesh:       nil,
			wantCenter: Point3{},
			wantScale:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.mesh)
			if !pointsAlmostEqual(got.Center, tc.wantCenter) {
				t.Errorf("Center = %v, want %v", got.Center, tc.wantCenter)
			}
			if !almostEqual(got.Scale, tc.wantScale) {
				t.Errorf("Scale = %v, want %v", got.Scale, tc.wantScale)
			}
		})
	}
}

func TestNormalizeFitsUnitBox(t *testing.T) {
	m := meshOf(Point3{-3, 10, 2}, Point3{5, 12, 4}, Point3{1, 11, 0})
	params := Normalize(m)

	for _, v := range m.Vertices {
		p := params.Apply(v)
		for _, c := range []float64{p.X, p.Y, p.Z} {
			if c < -0.5-float64EqualityThreshold || c > 0.5+float64EqualityThreshold {
				t.Errorf("normalized %v = %v, outside [-0.5, 0.5]", v, p)
			}
		}
	}
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	m := meshOf(Point3{-1, -1, -1}, Point3{1, 1, 1})
	m.AddFace([]int{0, 1})
	m.DeriveEdges()
	before := m.Copy()

	Normalize(m)

	if !reflect.DeepEqual(m, before) {
		t.Errorf("mesh changed: %+v, was %+v", m, before)
	}
}

func TestComputeBounds(t *testing.T) {
	if _, ok := ComputeBounds(nil); ok {
		t.Error("expected ok = false for no points")
	}

	b, ok := ComputeBounds([]Point3{{1, -2, 3}, {-1, 4, 0}, {0, 0, 9}})
	if !ok {
		t.Fatal("expected ok = true")
	}
	want := Bounds{Min: Point3{-1, -2, 0}, Max: Point3{1, 4, 9}}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
	if !almostEqual(b.MaxExtent(), 9) {
		t.Errorf("MaxExtent = %v, want 9", b.MaxExtent())
	}
}
