package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smasonuk/wirespin"
	"github.com/smasonuk/wirespin/internal/config"
	"github.com/smasonuk/wirespin/internal/logger"
)

var (
	configPath string
	debug      bool
	logFile    string
	frameRate  float64
	distance   float64
	axis       string
	frames     int
	outDir     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wirespin [model.obj]",
		Short: "Spinning wireframe OBJ viewer",
		Long: `wirespin - Spinning wireframe OBJ viewer

Draws the edges of an OBJ model rotating half a turn per second. Without a
model, or when it cannot be read, a cube is shown instead.

Controls:
  Space       - Pause / resume
  Up/Down     - Zoom in/out
  Scroll      - Zoom in/out
  R           - Reset rotation
  Esc, Q      - Quit`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to config file")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")
	pf.StringVar(&logFile, "log-file", "", "Also write logs to this file")
	pf.Float64Var(&frameRate, "fps", 0, "Frame rate the rotation is paced to")
	pf.Float64Var(&distance, "distance", 0, "Camera distance from the model center")
	pf.StringVar(&axis, "axis", "", "Rotation axis: x, y or z")

	viewCmd := &cobra.Command{
		Use:   "view [model.obj]",
		Short: "Open the model in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args)
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info <model.obj>",
		Short: "Display model information",
		Long:  "Display vertex, face and edge counts, the bounding box, normalization and any parse problems of an OBJ file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(nil); err != nil {
				return err
			}
			return runInfo(cmd.OutOrStdout(), args[0])
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [model.obj]",
		Short: "Render frames to PNG files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, args)
		},
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 0, "Number of frames to write")
	snapshotCmd.Flags().StringVar(&outDir, "out", "", "Directory the PNG files are written to")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "Write the effective configuration as YAML",
		Long:  "Write the effective configuration to path, or to the user config directory when no path is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, args)
		},
	}

	cmd.AddCommand(viewCmd, infoCmd, snapshotCmd, configCmd)
	return cmd
}

// setup loads the config, applies command-line overrides and starts logging.
func setup(args []string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	o := config.Overrides{
		Debug:          debug,
		LogFile:        logFile,
		FrameRate:      frameRate,
		CameraDistance: distance,
		Axis:           axis,
		Frames:         frames,
		OutDir:         outDir,
	}
	if len(args) > 0 {
		o.ModelPath = args[0]
	}
	cfg.Apply(o)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("starting logger: %w", err)
	}
	return cfg, nil
}

// newState loads the configured model, falling back to the cube when it is
// missing or unreadable.
func newState(cfg *config.Config) (*wirespin.RenderState, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}

	var mesh *wirespin.Mesh
	if cfg.Model.Path != "" {
		mesh, err = wirespin.LoadMesh(cfg.Model.Path)
		if err != nil {
			logger.Warn("Falling back to default cube", zap.Error(err))
		}
	}
	return wirespin.NewRenderState(mesh, opts), nil
}
