package main

import (
	"github.com/smasonuk/wirespin/ebitenview"
	"github.com/smasonuk/wirespin/internal/logger"
)

func runView(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	state, err := newState(cfg)
	if err != nil {
		return err
	}

	return ebitenview.Run(state, ebitenview.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		LineWidth: cfg.Render.LineWidth,
		ShowFPS:   cfg.Logging.Level == "debug",
	})
}
