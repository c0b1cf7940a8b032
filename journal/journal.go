// Package journal writes a fixture model as a Python journal for the CAE
// host. Replaying the journal inside the host builds the same model, with
// every unit conversion and anchor point already evaluated.
package journal

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/turninig/chuck/fixture"
	"gonum.org/v1/gonum/spatial/r3"
)

//go:embed journal.py.tmpl
var journalTmpl string

var tmpl = template.Must(template.New("journal").Funcs(template.FuncMap{
	"num":    num,
	"vec":    vec,
	"findAt": findAt,
	"plane":  plane,
	"dofs":   dofs,
	"onoff":  onoff,
	"half":   func(v, sign float64) float64 { return sign * v / 2 },
	"list":   func(v ...r3.Vec) []r3.Vec { return v },
}).Parse(journalTmpl))

// Write writes the journal of m to w.
func Write(w io.Writer, m *fixture.Model) error {
	if m == nil {
		return fmt.Errorf("journal: nil model")
	}
	return tmpl.Execute(w, m)
}

// num formats a float as a Python literal that round-trips exactly.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

func vec(v r3.Vec) string {
	return "(" + num(v.X) + ", " + num(v.Y) + ", " + num(v.Z) + ")"
}

// findAt formats points as the argument list of a findAt call.
func findAt(pts []r3.Vec) string {
	args := make([]string, len(pts))
	for i, p := range pts {
		args[i] = "(" + vec(p) + ",)"
	}
	return strings.Join(args, ", ")
}

func plane(pl fixture.Plane) string {
	return fmt.Sprintf("point1=%s, point2=%s, point3=%s",
		vec(pl.Points[0]), vec(pl.Points[1]), vec(pl.Points[2]))
}

func dofs(fixed []fixture.DOF) string {
	args := make([]string, 0, 6)
	for d := fixture.U1; d <= fixture.UR3; d++ {
		state := "UNSET"
		for _, f := range fixed {
			if f == d {
				state = "SET"
				break
			}
		}
		args = append(args, d.String()+"="+state)
	}
	return strings.Join(args, ", ")
}

func onoff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
