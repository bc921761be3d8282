package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smasonuk/wirespin/internal/logger"
	"github.com/smasonuk/wirespin/snapshot"
)

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	state, err := newState(cfg)
	if err != nil {
		return err
	}

	paths, err := snapshot.Render(state, snapshot.Options{
		Frames:    cfg.Snapshot.Frames,
		OutDir:    cfg.Snapshot.OutDir,
		Width:     cfg.Snapshot.Width,
		Height:    cfg.Snapshot.Height,
		LineWidth: cfg.Render.LineWidth,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", len(paths), cfg.Snapshot.OutDir)
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := setup(nil)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config written to user config directory")
		return nil
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", args[0])
	return nil
}
