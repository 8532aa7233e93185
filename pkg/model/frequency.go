package model

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/pipeline"
)

// JointKey identifies one (class, feature, value) combination.
type JointKey struct {
	Label   string
	Feature int
	Value   string
}

// FrequencyModel holds raw training counts. Smoothing is applied by Estimate,
// never stored here, so the counts always add up to the number of rows.
type FrequencyModel struct {
	total      int
	classCount map[string]int
	jointCount map[JointKey]int
}

func newFrequencyModel() *FrequencyModel {
	return &FrequencyModel{
		classCount: map[string]int{},
		jointCount: map[JointKey]int{},
	}
}

// Total is the number of training rows counted.
func (m *FrequencyModel) Total() int { return m.total }

// ClassCount is the number of training rows with label.
func (m *FrequencyModel) ClassCount(label string) int { return m.classCount[label] }

// JointCount is the number of training rows with key.Label whose feature
// key.Feature equals key.Value.
func (m *FrequencyModel) JointCount(key JointKey) int { return m.jointCount[key] }

func (m *FrequencyModel) add(row data.Row, pos int, schema *pipeline.Schema) error {
	if err := schema.CheckRow(row, pos); err != nil {
		return err
	}
	if !schema.HasLabel(row.Label) {
		return &UnknownLabelError{Label: row.Label}
	}
	for i, v := range row.Features {
		if !schema.Feature(i).Has(v) {
			return fmt.Errorf("%w: row %q feature %d (%s) value %q",
				ErrUnknownValue, row.ID, i, schema.Feature(i).Name, v)
		}
	}
	m.total++
	m.classCount[row.Label]++
	for i, v := range row.Features {
		m.jointCount[JointKey{Label: row.Label, Feature: i, Value: v}]++
	}
	return nil
}

// merge adds other's counts into m. Integer addition per key keeps the result
// independent of merge order.
func (m *FrequencyModel) merge(other *FrequencyModel) {
	m.total += other.total
	for k, v := range other.classCount {
		m.classCount[k] += v
	}
	for k, v := range other.jointCount {
		m.jointCount[k] += v
	}
}

// CountFrequencies counts classes and (class, feature, value) triples in a
// single pass over the training rows.
func CountFrequencies(rows []data.Row, schema *pipeline.Schema) (*FrequencyModel, error) {
	return countRange(rows, 0, schema)
}

func countRange(rows []data.Row, offset int, schema *pipeline.Schema) (*FrequencyModel, error) {
	m := newFrequencyModel()
	for i, row := range rows {
		if err := m.add(row, offset+i, schema); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// CountFrequenciesParallel splits rows into contiguous chunks, counts them
// concurrently and merges the partial counts. workers <= 0 uses GOMAXPROCS.
// The result equals CountFrequencies on the same input.
func CountFrequenciesParallel(ctx context.Context, rows []data.Row, schema *pipeline.Schema, workers int) (*FrequencyModel, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(rows) < 2*workers {
		return CountFrequencies(rows, schema)
	}

	rowsPerWorker := (len(rows) + workers - 1) / workers
	partials := make([]*FrequencyModel, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, len(rows))
		if start >= end {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := countRange(rows[start:end], start, schema)
			if err != nil {
				return err
			}
			partials[w] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := newFrequencyModel()
	for _, p := range partials {
		if p != nil {
			out.merge(p)
		}
	}
	return out, nil
}
