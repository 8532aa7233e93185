package pipeline

import "github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"

// Transformer is a row preprocessing step: fit on training rows, then
// transform both training and test rows. Transform must not modify its input.
type Transformer interface {
	Fit(rows []data.Row)
	Transform(rows []data.Row) []data.Row
}

// Pipeline chains multiple transformers.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits each step on the output of the previous one and returns the
// transformed training rows.
func (p *Pipeline) Fit(rows []data.Row) []data.Row {
	for _, step := range p.steps {
		step.Fit(rows)
		rows = step.Transform(rows)
	}
	return rows
}

func (p *Pipeline) Transform(rows []data.Row) []data.Row {
	for _, step := range p.steps {
		rows = step.Transform(rows)
	}
	return rows
}

// Len is the number of steps.
func (p *Pipeline) Len() int { return len(p.steps) }
