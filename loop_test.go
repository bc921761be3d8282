package wirespin

import (
	"reflect"
	"testing"
)

func TestPointRingNextWraps(t *testing.T) {
	pts := []Point3{{X: 1}, {X: 2}, {X: 3}}
	r := NewPointRing(pts)

	var got []float64
	for i := 0; i < 5; i++ {
		got = append(got, r.Next().X)
	}
	want := []float64{1, 2, 3, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Next sequence = %v, want %v", got, want)
	}
}

func TestPointRingSegments(t *testing.T) {
	a, b, c := Point3{X: 1}, Point3{Y: 1}, Point3{Z: 1}

	testCases := []struct {
		name string
		pts  []Point3
		want [][2]Point3
	}{
		{"triangle", []Point3{a, b, c}, [][2]Point3{{a, b}, {b, c}, {c, a}}},
		{"pair", []Point3{a, b}, [][2]Point3{{a, b}, {b, a}}},
		{"single", []Point3{a}, nil},
		{"empty", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewPointRing(tc.pts)
			if len(tc.pts) > 0 {
				r.Next() // Segments always starts from the first point
			}
			got := r.Segments()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Segments() = %v, want %v", got, tc.want)
			}
		})
	}
}
