package wirespin

// LoopPairs returns the consecutive pairs of a closed loop, wrapping from the
// last element back to the first. A loop of n >= 2 elements yields n pairs.
func LoopPairs(loop []int) [][2]int {
	if len(loop) < 2 {
		return nil
	}
	pairs := make([][2]int, len(loop))
	for i := range loop {
		pairs[i] = [2]int{loop[i], loop[(i+1)%len(loop)]}
	}
	return pairs
}

// PointRing cycles over a fixed set of points, wrapping at both ends.
type PointRing struct {
	points []Point3
	pos    int
}

func NewPointRing(points []Point3) *PointRing {
	return &PointRing{points: points}
}

// Next returns the current point and advances, wrapping to the start.
func (r *PointRing) Next() Point3 {
	p := r.points[r.pos]
	r.pos++
	if r.pos >= len(r.points) {
		r.pos = 0
	}
	return p
}

// Segments returns each consecutive pair of the ring including the closing one.
func (r *PointRing) Segments() [][2]Point3 {
	n := len(r.points)
	if n < 2 {
		return nil
	}
	r.pos = 0
	segs := make([][2]Point3, 0, n)
	prev := r.Next()
	for i := 0; i < n; i++ {
		cur := r.Next()
		segs = append(segs, [2]Point3{prev, cur})
		prev = cur
	}
	return segs
}
