// Package ebitenview shows a spinning wireframe in a window.
package ebitenview

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/smasonuk/wirespin"
	"github.com/smasonuk/wirespin/internal/logger"
)

const (
	keyZoomStep   = 0.02
	wheelZoomStep = 0.1
)

// Options controls the window.
type Options struct {
	Width     int
	Height    int
	Title     string
	LineWidth float64
	ShowFPS   bool
}

// input is what the player asked for during one tick.
type input struct {
	togglePause bool
	reset       bool
	quit        bool
	zoom        float64
}

type Game struct {
	state  *wirespin.RenderState
	canvas *Canvas
	opts   Options
	paused bool
}

func NewGame(state *wirespin.RenderState, opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = 640
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	return &Game{
		state:  state,
		canvas: NewCanvas(opts.LineWidth),
		opts:   opts,
	}
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) Update() error {
	return g.apply(readInput())
}

// apply acts on one tick's input and advances the rotation unless paused.
func (g *Game) apply(in input) error {
	if in.quit {
		return ebiten.Termination
	}
	if in.togglePause {
		g.paused = !g.paused
		logger.Debug("pause toggled", zap.Bool("paused", g.paused))
	}
	if in.reset {
		g.state.Reset()
	}
	if in.zoom != 0 {
		g.state.Camera.Zoom(in.zoom)
	}
	if !g.paused {
		g.state.Advance()
	}
	return nil
}

func readInput() input {
	var in input
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.togglePause = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.reset = inpututil.IsKeyJustPressed(ebiten.KeyR)

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.zoom -= keyZoomStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.zoom += keyZoomStep
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		in.zoom -= wy * wheelZoomStep
	}
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.state.Render(g.canvas)
	if g.opts.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  angle: %0.2f", ebiten.ActualFPS(), g.state.Angle()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Run opens the window and blocks until it is closed. The tick rate is the
// state's frame rate, so one tick is one animation frame.
func Run(state *wirespin.RenderState, opts Options) error {
	g := NewGame(state, opts)

	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetTPS(int(math.Round(state.FrameRate)))

	logger.Info("Opening window",
		zap.Int("width", g.opts.Width),
		zap.Int("height", g.opts.Height),
		zap.Float64("frame_rate", state.FrameRate),
	)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
