package wirespin

import (
	"image/color"
	"math"

	"go.uber.org/zap"

	"github.com/smasonuk/wirespin/internal/logger"
)

// DefaultFrameRate is the assumed frame cadence. The angle advances by
// π/FrameRate per frame whatever the real elapsed time is.
const DefaultFrameRate = 90.0

// Options configures a RenderState.
type Options struct {
	FrameRate      float64
	CameraDistance float64
	MinDepth       float64
	Axis           Axis
	Background     color.Color
	Foreground     color.Color
}

func DefaultOptions() Options {
	return Options{
		FrameRate:      DefaultFrameRate,
		CameraDistance: DefaultCameraDistance,
		MinDepth:       DefaultMinDepth,
		Axis:           ROTY,
		Background:     ColorBlack,
		Foreground:     ColorCyan,
	}
}

// RenderState is owned by the frame loop. It holds the loaded shape with its
// normalization, the camera and the frame counter the rotation angle derives
// from. It is not safe for concurrent use.
type RenderState struct {
	Shape      Shape
	Params     NormalizationParams
	Camera     *Camera
	Axis       Axis
	FrameRate  float64
	Background color.Color
	Foreground color.Color

	frames       uint64
	usingDefault bool
	transformer  *Transformer
}

// NewRenderState prepares a state for mesh. An empty (or nil) mesh is
// replaced by DefaultCube.
func NewRenderState(mesh *Mesh, opts Options) *RenderState {
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	if opts.Background == nil {
		opts.Background = ColorBlack
	}
	if opts.Foreground == nil {
		opts.Foreground = ColorCyan
	}

	cam := NewCamera(opts.CameraDistance)
	if opts.MinDepth > 0 {
		cam.MinDepth = opts.MinDepth
	}

	s := &RenderState{
		Camera:     cam,
		Axis:       opts.Axis,
		FrameRate:  opts.FrameRate,
		Background: opts.Background,
		Foreground: opts.Foreground,
	}
	s.Load(mesh)
	return s
}

// Load swaps in a new mesh and recomputes its normalization. The frame
// counter keeps running.
func (s *RenderState) Load(mesh *Mesh) {
	if mesh.Empty() {
		s.Shape = DefaultCube()
		s.Params = IdentityParams()
		s.usingDefault = true
		logger.Info("Using default cube")
	} else {
		s.Shape = ShapeFromMesh(mesh)
		s.Params = Normalize(mesh)
		s.usingDefault = false
		logger.Info("Using OBJ model for rendering",
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Int("edges", len(mesh.Edges)),
			zap.Float64("scale", s.Params.Scale),
		)
	}
	s.transformer = NewTransformer(s.Params, s.Axis, s.Camera)
}

// UsingDefault reports whether the fallback cube is being drawn.
func (s *RenderState) UsingDefault() bool {
	return s.usingDefault
}

// Advance moves to the next frame.
func (s *RenderState) Advance() {
	s.frames++
}

func (s *RenderState) Frames() uint64 {
	return s.frames
}

// Reset rewinds the rotation to angle 0.
func (s *RenderState) Reset() {
	s.frames = 0
}

// AngleStep is the rotation added per frame: half a turn per second.
func (s *RenderState) AngleStep() float64 {
	return math.Pi / s.FrameRate
}

// Angle is the current rotation in [0, 2π). It is computed from the integer
// frame count so long runs don't accumulate rounding error.
func (s *RenderState) Angle() float64 {
	return math.Mod(float64(s.frames)*s.AngleStep(), 2*math.Pi)
}

// BuildFrame projects the shape at the current angle. Segments crossing the
// camera's near plane are cut at it, segments fully behind are dropped and
// counted in Culled.
func (s *RenderState) BuildFrame() Frame {
	f := Frame{Background: s.Background, Foreground: s.Foreground}

	s.transformer.Axis = s.Axis
	view, proj := s.transformer.Transform(s.Shape.Vertices, s.Angle())

	for _, path := range s.Shape.Paths {
		switch {
		case len(path) == 2:
			s.addSegment(&f, view[path[0]], view[path[1]])
		case len(path) > 2:
			if s.allVisible(view, path) {
				loop := make([]Point3, len(path))
				for i, idx := range path {
					loop[i] = proj[idx]
				}
				f.Loops = append(f.Loops, loop)
				continue
			}
			pts := make([]Point3, len(path))
			for i, idx := range path {
				pts[i] = view[idx]
			}
			for _, seg := range NewPointRing(pts).Segments() {
				s.addSegment(&f, seg[0], seg[1])
			}
		}
	}
	return f
}

func (s *RenderState) addSegment(f *Frame, a, b Point3) {
	a, b, ok := s.Camera.ClipSegment(a, b)
	if !ok {
		f.Culled++
		return
	}
	f.Lines = append(f.Lines, [2]Point3{s.Camera.Project(a), s.Camera.Project(b)})
}

func (s *RenderState) allVisible(view []Point3, path []int) bool {
	for _, idx := range path {
		if !s.Camera.Visible(view[idx]) {
			return false
		}
	}
	return true
}

// Render builds the current frame and draws it to r. It does not advance.
func (s *RenderState) Render(r Renderer) Frame {
	f := s.BuildFrame()
	f.Draw(r)
	return f
}
