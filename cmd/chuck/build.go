package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/turninig/chuck/journal"
	"github.com/turninig/chuck/render"
	"github.com/turninig/chuck/report"
)

var (
	outDir    string
	meshCells int
	noPreview bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the fixture model",
	Long: `Export the fixture model to the output directory:

  fixture.stl    solid model of the assembly
  fixture.png    shaded preview of fixture.stl
  placement.png  top view of the jaw placement and anchor points
  fixture.py     CAE journal replaying the model
  fixture.pdf    model summary`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := model()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		out := func(name string) string { return filepath.Join(outDir, name) }

		if err := writeFile(out("fixture.py"), func(f *os.File) error { return journal.Write(f, m) }); err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		if err := writeFile(out("fixture.pdf"), func(f *os.File) error { return report.WritePDF(f, m) }); err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if err := render.PlacementPlot(m, out("placement.png")); err != nil {
			return fmt.Errorf("placement plot: %w", err)
		}
		log.Printf("rendering %s with %d cells", out("fixture.stl"), meshCells)
		if err := render.CreateSTL(out("fixture.stl"), m, meshCells); err != nil {
			return fmt.Errorf("solid model: %w", err)
		}
		if !noPreview {
			err := render.STLToPNG(out("fixture.stl"), out("fixture.png"), render.DefaultView)
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}
		}
		log.Printf("wrote %s", outDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	buildCmd.Flags().IntVar(&meshCells, "cells", 300, "marching cubes cells along the longest side")
	buildCmd.Flags().BoolVar(&noPreview, "no-preview", false, "skip the shaded PNG preview")
	rootCmd.AddCommand(buildCmd)
}

func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
