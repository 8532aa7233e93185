package pipeline

import (
	"fmt"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
)

// MalformedRowError reports a row whose feature count differs from the schema.
type MalformedRowError struct {
	ID       string
	Position int // zero-based index of the row in its dataset, -1 if unknown
	Got      int
	Want     int
}

func (e *MalformedRowError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("malformed row %q: %d feature value(s), schema has %d", e.ID, e.Got, e.Want)
	}
	return fmt.Sprintf("malformed row %q (position %d): %d feature value(s), schema has %d",
		e.ID, e.Position, e.Got, e.Want)
}

// Feature is one schema column and the values observed for it.
type Feature struct {
	Name   string
	values []string
	index  map[string]struct{}
}

func newFeature(name string) *Feature {
	return &Feature{Name: name, index: map[string]struct{}{}}
}

func (f *Feature) add(v string) {
	if _, ok := f.index[v]; ok {
		return
	}
	f.index[v] = struct{}{}
	f.values = append(f.values, v)
}

// Has reports whether v was observed for this feature.
func (f *Feature) Has(v string) bool {
	_, ok := f.index[v]
	return ok
}

// Values returns the observed values in first-seen order.
func (f *Feature) Values() []string {
	out := make([]string, len(f.values))
	copy(out, f.values)
	return out
}

// Len is the number of distinct observed values.
func (f *Feature) Len() int { return len(f.values) }

// Schema describes the categorical structure of a training set. It is read-only
// once BuildSchema returns.
type Schema struct {
	features []*Feature
	labels   []string
	labelSet map[string]int
}

// SchemaOption configures BuildSchema.
type SchemaOption func(*schemaConfig)

type schemaConfig struct {
	vocabulary [][]data.Row
}

// WithVocabulary adds the feature values of rows (typically the test set) to the
// observed values. Their labels are not added to the class-label set.
func WithVocabulary(rows []data.Row) SchemaOption {
	return func(c *schemaConfig) { c.vocabulary = append(c.vocabulary, rows) }
}

// BuildSchema scans the training rows once, collecting each feature's values and
// the class labels in first-seen order. Any row whose width differs from
// featureNames fails the whole build.
func BuildSchema(rows []data.Row, featureNames []string, opts ...SchemaOption) (*Schema, error) {
	var cfg schemaConfig
	for _, o := range opts {
		o(&cfg)
	}

	s := &Schema{
		features: make([]*Feature, len(featureNames)),
		labelSet: map[string]int{},
	}
	for i, name := range featureNames {
		s.features[i] = newFeature(name)
	}

	for pos, row := range rows {
		if err := s.CheckRow(row, pos); err != nil {
			return nil, err
		}
		if _, ok := s.labelSet[row.Label]; !ok {
			s.labelSet[row.Label] = len(s.labels)
			s.labels = append(s.labels, row.Label)
		}
		s.addValues(row)
	}
	for _, extra := range cfg.vocabulary {
		for pos, row := range extra {
			if err := s.CheckRow(row, pos); err != nil {
				return nil, err
			}
			s.addValues(row)
		}
	}
	return s, nil
}

func (s *Schema) addValues(row data.Row) {
	for i, v := range row.Features {
		s.features[i].add(v)
	}
}

// CheckRow returns a *MalformedRowError if row does not have one value per feature.
func (s *Schema) CheckRow(row data.Row, position int) error {
	if len(row.Features) != len(s.features) {
		return &MalformedRowError{ID: row.ID, Position: position, Got: len(row.Features), Want: len(s.features)}
	}
	return nil
}

// NumFeatures is the number of feature columns.
func (s *Schema) NumFeatures() int { return len(s.features) }

// Feature returns the i-th feature column.
func (s *Schema) Feature(i int) *Feature { return s.features[i] }

// FeatureNames returns the column names in order.
func (s *Schema) FeatureNames() []string {
	out := make([]string, len(s.features))
	for i, f := range s.features {
		out[i] = f.Name
	}
	return out
}

// Labels returns the class labels in first-seen order.
func (s *Schema) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// HasLabel reports whether label occurred in training.
func (s *Schema) HasLabel(label string) bool {
	_, ok := s.labelSet[label]
	return ok
}
