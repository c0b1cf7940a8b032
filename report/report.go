// Package report writes a printable summary of a fixture model.
package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/turninig/chuck"
	"github.com/turninig/chuck/fixture"
)

const (
	rowHeight  = 6
	tableWidth = 180 // A4 width less 15mm margins
)

// WritePDF writes a one page A4 summary of m to w: parameters, materials,
// jaw placements and partition results.
func WritePDF(w io.Writer, m *fixture.Model) error {
	if m == nil {
		return fmt.Errorf("report: nil model")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(m.Name+" fixture", true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s: %d jaw chuck fixture", m.Name, len(m.Jaws)))
	pdf.Ln(12)

	p := m.Params
	heading(pdf, "Parameters")
	table(pdf, []string{"quantity", "value"}, [][]string{
		{"workpiece length", mm(p.WorkpieceLength)},
		{"inner diameter", mm(2 * p.InnerRadius)},
		{"outer diameter", mm(2 * p.OuterRadius)},
		{"jaw length x width x height", fmt.Sprintf("%s x %s x %s", mm(p.JawLength), mm(p.JawWidth), mm(p.JawHeight))},
		{"jaw force", fmt.Sprintf("%g N", p.JawForce)},
		{"contact", string(p.Contact)},
		{"workpiece seeds", fmt.Sprintf("%s, %d along length", mm(p.WorkpieceMesh.Size), p.WorkpieceMesh.Seeds(p.WorkpieceLength))},
		{"jaw seeds", fmt.Sprintf("%s, %d along length", mm(p.JawMesh.Size), p.JawMesh.Seeds(p.JawLength))},
	})

	heading(pdf, "Materials")
	var rows [][]string
	for _, mat := range m.Materials {
		jc := "no"
		if mat.JohnsonCook != nil {
			jc = "yes"
		}
		rows = append(rows, []string{mat.Name, fmt.Sprintf("%.4g Pa", mat.Young), fmt.Sprintf("%g", mat.Poisson), jc})
	}
	table(pdf, []string{"name", "Young's modulus", "Poisson ratio", "Johnson-Cook"}, rows)

	heading(pdf, "Jaw placement")
	rows = rows[:0]
	for _, j := range m.Jaws {
		f := j.Force()
		rows = append(rows, []string{
			j.Name,
			fmt.Sprintf("%g deg", j.Offset),
			fmt.Sprintf("%g deg", chuck.NormalizeDegrees(j.Offset)),
			fmt.Sprintf("(%.1f, %.1f, %.1f) N", f.X, f.Y, f.Z),
		})
	}
	table(pdf, []string{"instance", "offset", "normalized", "force"}, rows)

	heading(pdf, "Workpiece partitions")
	rows = rows[:0]
	for _, r := range m.WorkpiecePartitions {
		state := "cut"
		if r.Redundant {
			state = "redundant"
		}
		n := r.Plane.Normal()
		rows = append(rows, []string{fmt.Sprint(r.Index), fmt.Sprintf("(%.3f, %.3f, %.3f)", n.X, n.Y, n.Z), state})
	}
	table(pdf, []string{"index", "plane normal", "result"}, rows)

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, "Lengths are reported in millimeters. The model itself is built in SI units. "+
		"Forces act along the first axis of each jaw coordinate system, pointing at the workpiece axis.", "", "L", false)
	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
}

func table(pdf *gofpdf.Fpdf, header []string, rows [][]string) {
	width := tableWidth / float64(len(header))
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range header {
		pdf.CellFormat(width, rowHeight, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for _, c := range row {
			pdf.CellFormat(width, rowHeight, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func mm(meters float64) string {
	return fmt.Sprintf("%.4g mm", meters/chuck.Millimeters(1))
}
