package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/turninig/chuck"
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Print the angular placement and anchor points of every jaw",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := model()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "jaw\toffset\tnormalized\tcontact (mm)\tload (mm)")
		for _, j := range m.Jaws {
			c := j.Master.Anchors[0]
			fmt.Fprintf(w, "%s\t%g\t%g\t%s\t%s\n", j.Name, j.Offset,
				chuck.NormalizeDegrees(j.Offset), mm(c.X, c.Y, c.Z), mm(j.Load.Vertex.X, j.Load.Vertex.Y, j.Load.Vertex.Z))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(placeCmd)
}

func mm(x, y, z float64) string {
	k := 1 / chuck.Millimeters(1)
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", x*k, y*k, z*k)
}
