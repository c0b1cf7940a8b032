package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turninig/chuck/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE.stl",
	Short: "Print triangle count and extent of an STL file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := render.InspectSTL(args[0])
		if err != nil {
			return err
		}
		size := ms.Size()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "triangles: %d\n", ms.Triangles)
		fmt.Fprintf(w, "min:       %v\n", ms.Min)
		fmt.Fprintf(w, "max:       %v\n", ms.Max)
		fmt.Fprintf(w, "size:      %v\n", size)
		fmt.Fprintf(w, "radial:    %g to %g\n", ms.RMin, ms.RMax)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
