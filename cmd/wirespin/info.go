package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/smasonuk/wirespin"
)

func runInfo(w io.Writer, modelPath string) error {
	info, err := os.Stat(modelPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	mesh, report, err := wirespin.LoadMeshReport(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	fmt.Fprintf(w, "File:       %s\n", filepath.Base(modelPath))
	fmt.Fprintf(w, "Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Vertices:   %d\n", len(mesh.Vertices))
	fmt.Fprintf(w, "Faces:      %d\n", len(mesh.Faces))
	fmt.Fprintf(w, "Edges:      %d\n", len(mesh.Edges))

	if b, ok := mesh.Bounds(); ok {
		size := b.Extent()
		params := wirespin.Normalize(mesh)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Bounds Min: (%.3f, %.3f, %.3f)\n", b.Min.X, b.Min.Y, b.Min.Z)
		fmt.Fprintf(w, "Bounds Max: (%.3f, %.3f, %.3f)\n", b.Max.X, b.Max.Y, b.Max.Z)
		fmt.Fprintf(w, "Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
		fmt.Fprintf(w, "Center:     (%.3f, %.3f, %.3f)\n", params.Center.X, params.Center.Y, params.Center.Z)
		fmt.Fprintf(w, "Scale:      %.4f\n", params.Scale)
	}

	if !report.Clean() || report.IgnoredRecords > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Lines:      %d\n", report.Lines)
		fmt.Fprintf(w, "Ignored:    %d records\n", report.IgnoredRecords)
		fmt.Fprintf(w, "Dropped:    %d face refs, %d out of range\n", report.DroppedRefs, report.OutOfRangeRefs)
		for _, le := range report.SkippedLines {
			fmt.Fprintf(w, "Skipped:    %v\n", le)
		}
	}
	return nil
}
