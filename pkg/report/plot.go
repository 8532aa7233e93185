package report

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/model"
)

// PlotClassMetrics saves a grouped bar chart of per-class precision and recall.
// The image format follows the file extension (png, svg, pdf, ...).
func PlotClassMetrics(ms []model.ClassMetrics, accuracy float64, filename string) error {
	if len(ms) == 0 {
		return errors.New("report: no classes to plot")
	}
	p := plot.New()
	p.Title.Text = "Per-class precision and recall"
	p.X.Label.Text = "Class"
	p.Y.Label.Text = "Score"
	p.Y.Min, p.Y.Max = 0, 1

	precision := make(plotter.Values, len(ms))
	recall := make(plotter.Values, len(ms))
	labels := make([]string, len(ms))
	for i, m := range ms {
		precision[i] = m.Precision
		recall[i] = m.Recall
		labels[i] = m.Label
	}

	width := vg.Points(18)
	pb, err := plotter.NewBarChart(precision, width)
	if err != nil {
		return err
	}
	pb.Color = color.RGBA{B: 255, A: 255, R: 50, G: 50}
	pb.LineStyle.Width = vg.Length(0)
	pb.Offset = -width / 2

	rb, err := plotter.NewBarChart(recall, width)
	if err != nil {
		return err
	}
	rb.Color = color.RGBA{R: 255, A: 255, G: 120}
	rb.LineStyle.Width = vg.Length(0)
	rb.Offset = width / 2

	acc := plotter.NewFunction(func(float64) float64 { return accuracy })
	acc.Color = color.RGBA{A: 255}
	acc.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(pb, rb, acc)
	p.Legend.Add("precision", pb)
	p.Legend.Add("recall", rb)
	p.Legend.Add("accuracy", acc)
	p.Legend.Top = true
	p.NominalX(labels...)

	w := vg.Length(max(4, len(ms)+2)) * vg.Inch
	return p.Save(w, 4*vg.Inch, filename)
}
