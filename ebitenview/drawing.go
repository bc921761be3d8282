package ebitenview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/wirespin"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Canvas draws wirespin frames onto an ebiten image.
type Canvas struct {
	dst       *ebiten.Image
	clr       color.Color
	lineWidth float32
}

func NewCanvas(lineWidth float64) *Canvas {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	return &Canvas{clr: wirespin.ColorCyan, lineWidth: float32(lineWidth)}
}

// Target sets the image the next frame is drawn to.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *Canvas) SetColor(clr color.Color) {
	c.clr = clr
}

func (c *Canvas) Line(a, b wirespin.Point3) {
	w, h := c.size()
	x0, y0 := toScreen32(a, w, h)
	x1, y1 := toScreen32(b, w, h)
	vector.StrokeLine(c.dst, x0, y0, x1, y1, c.lineWidth, c.clr, true)
}

func (c *Canvas) LineLoop(points []wirespin.Point3) {
	w, h := c.size()
	xp := make([]float32, len(points))
	yp := make([]float32, len(points))
	for i, p := range points {
		xp[i], yp[i] = toScreen32(p, w, h)
	}
	drawPolygonOutline(c.dst, xp, yp, c.lineWidth, c.clr)
}

func (c *Canvas) size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func toScreen32(p wirespin.Point3, w, h float64) (float32, float32) {
	x, y := wirespin.ToScreen(p, w, h)
	return float32(x), float32(y)
}

// drawPolygonOutline strokes the closed outline through the given points.
func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.Color) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)
	colorVertices(vertices, clr)

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// colorVertices paints every vertex with clr, sampling the solid white pixel.
func colorVertices(vertices []ebiten.Vertex, clr color.Color) {
	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}
}
