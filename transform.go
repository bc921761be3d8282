package wirespin

// ProjectVertex runs one vertex through the frame pipeline, in this order:
// subtract center, multiply by scale, rotate about Y by angle, add
// cameraDistance to Z, divide X and Y by Z. Rotation has to come before the
// camera translation or the model orbits instead of spinning in place.
//
// The divide is clamped at DefaultMinDepth; the returned Z is the depth before
// clamping, X and Y are the screen-space coordinates.
func ProjectVertex(p, center Point3, scale, angle, cameraDistance float64) Point3 {
	return ProjectVertexAxis(p, center, scale, ROTY, angle, cameraDistance)
}

// ProjectVertexAxis is ProjectVertex with a selectable rotation axis.
func ProjectVertexAxis(p, center Point3, scale float64, axis Axis, angle, cameraDistance float64) Point3 {
	return ProjectClamped(viewVertex(p, center, scale, axis, angle, cameraDistance), DefaultMinDepth)
}

// viewVertex is everything in the pipeline except the perspective divide.
func viewVertex(p, center Point3, scale float64, axis Axis, angle, cameraDistance float64) Point3 {
	p = p.Sub(center).Scale(scale)
	p = Rotate(p, axis, angle)
	return TranslateZ(p, cameraDistance)
}

// Transformer projects whole vertex lists, reusing its output buffers between
// frames.
type Transformer struct {
	Params NormalizationParams
	Axis   Axis
	Camera *Camera

	view []Point3
	proj []Point3
}

func NewTransformer(params NormalizationParams, axis Axis, camera *Camera) *Transformer {
	return &Transformer{Params: params, Axis: axis, Camera: camera}
}

// Transform returns the camera-space and projected positions of every vertex
// for the given angle. The returned slices are only valid until the next call.
func (t *Transformer) Transform(vertices []Point3, angle float64) (view, proj []Point3) {
	if cap(t.view) < len(vertices) {
		t.view = make([]Point3, len(vertices))
		t.proj = make([]Point3, len(vertices))
	}
	t.view = t.view[:len(vertices)]
	t.proj = t.proj[:len(vertices)]

	for i, v := range vertices {
		t.view[i] = t.Camera.ToView(Rotate(t.Params.Apply(v), t.Axis, angle))
		t.proj[i] = t.Camera.Project(t.view[i])
	}
	return t.view, t.proj
}
