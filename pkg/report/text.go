// Package report renders evaluation results for people (terminal text, PNG
// charts) and for other programs (JSON, msgpack).
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/model"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/pipeline"
)

// Printer writes human-readable reports to w.
type Printer struct {
	w       io.Writer
	good    *color.Color
	bad     *color.Color
	heading *color.Color
	dim     *color.Color
}

// NewPrinter returns a Printer; colorize switches ANSI colours on or off
// regardless of what w is.
func NewPrinter(w io.Writer, colorize bool) *Printer {
	p := &Printer{
		w:       w,
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed, color.Bold),
		heading: color.New(color.Bold),
		dim:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.good, p.bad, p.heading, p.dim} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, runewidth.StringWidth(l))
	}
	return w
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'g', 6, 64)
}

// Prediction prints every label's score for one instance and marks the winner.
func (p *Printer) Prediction(id string, pred model.Prediction) {
	labels := make([]string, len(pred.Scores))
	for i, s := range pred.Scores {
		labels[i] = s.Label
	}
	width := labelWidth(labels)

	p.heading.Fprintf(p.w, "Instance %s\n", id)
	for _, s := range pred.Scores {
		line := fmt.Sprintf("  %s  %s", runewidth.FillRight(s.Label, width), formatProb(s.Score))
		if s.Label == pred.Label {
			fmt.Fprintf(p.w, "%s  <-\n", line)
		} else {
			p.dim.Fprintln(p.w, line)
		}
	}
}

// Instance prints a Prediction plus whether it matched the known label.
func (p *Printer) Instance(r model.InstanceResult) {
	p.Prediction(r.ID, model.Prediction{Label: r.Predicted, Score: r.Score, Scores: r.Scores})
	if r.Correct() {
		p.good.Fprintf(p.w, "  predicted %s (actual %s)\n", r.Predicted, r.Actual)
	} else {
		p.bad.Fprintf(p.w, "  predicted %s (actual %s)\n", r.Predicted, r.Actual)
	}
}

// Evaluation prints per-instance results (when instances is true), the
// per-class metrics and the overall accuracy.
func (p *Printer) Evaluation(ev *model.Evaluation, instances bool) {
	if instances {
		for _, r := range ev.Instances {
			p.Instance(r)
		}
		fmt.Fprintln(p.w)
	}
	p.ClassMetrics(ev.Confusion().PerClass())
	fmt.Fprintln(p.w)
	p.heading.Fprintf(p.w, "Accuracy: %.2f%% (%d/%d)\n", ev.Accuracy*100, ev.Correct, ev.Total)
}

// ClassMetrics prints a precision/recall/F1 table.
func (p *Printer) ClassMetrics(ms []model.ClassMetrics) {
	labels := make([]string, len(ms))
	for i, m := range ms {
		labels[i] = m.Label
	}
	width := max(labelWidth(labels), runewidth.StringWidth("class"))

	p.heading.Fprintf(p.w, "%s  %9s  %9s  %9s  %7s\n",
		runewidth.FillRight("class", width), "precision", "recall", "f1", "support")
	for _, m := range ms {
		fmt.Fprintf(p.w, "%s  %9.4f  %9.4f  %9.4f  %7d\n",
			runewidth.FillRight(m.Label, width), m.Precision, m.Recall, m.F1, m.Support)
	}
}

// Probabilities dumps the priors and every conditional probability of table.
func (p *Printer) Probabilities(table *model.ProbabilityTable, freq *model.FrequencyModel, schema *pipeline.Schema) {
	labels := table.Labels()
	width := labelWidth(labels)

	p.heading.Fprintf(p.w, "Priors (%s smoothing, %d training rows)\n", table.Smoothing(), freq.Total())
	for _, label := range labels {
		prior, _ := table.Prior(label)
		fmt.Fprintf(p.w, "  %s  %-10s  count=%d\n", runewidth.FillRight(label, width), formatProb(prior), freq.ClassCount(label))
	}

	p.heading.Fprintln(p.w, "Conditionals")
	for _, e := range table.Entries(schema) {
		name := schema.Feature(e.Feature).Name
		fmt.Fprintf(p.w, "  P(%s=%s | %s) = %s  count=%d\n",
			name, e.Value, e.Label, formatProb(e.Probability), freq.JointCount(e.JointKey))
	}
}
