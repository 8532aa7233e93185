package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
)

func rows() []data.Row {
	return []data.Row{
		{ID: "1", Label: "yes", Features: []string{"small", "red"}},
		{ID: "2", Label: "no", Features: []string{"large", "red"}},
		{ID: "3", Label: "yes", Features: []string{"small", "blue"}},
		{ID: "4", Label: "maybe", Features: []string{"medium", "red"}},
	}
}

func TestBuildSchema(t *testing.T) {
	s, err := BuildSchema(rows(), []string{"size", "colour"})
	if err != nil {
		t.Fatalf("BuildSchema: %v", err)
	}
	if got := strings.Join(s.Labels(), ","); got != "yes,no,maybe" {
		t.Fatalf("labels = %q, want first-seen order", got)
	}
	if s.NumFeatures() != 2 {
		t.Fatalf("features = %d", s.NumFeatures())
	}
	if got := strings.Join(s.Feature(0).Values(), ","); got != "small,large,medium" {
		t.Fatalf("size values = %q", got)
	}
	if got := strings.Join(s.FeatureNames(), ","); got != "size,colour" {
		t.Fatalf("names = %q", got)
	}
	if !s.Feature(1).Has("blue") || s.Feature(1).Has("green") {
		t.Fatal("colour membership wrong")
	}
	if !s.HasLabel("maybe") || s.HasLabel("never") {
		t.Fatal("label membership wrong")
	}
}

func TestBuildSchemaMalformedRow(t *testing.T) {
	in := rows()
	in[2].Features = []string{"small"}
	_, err := BuildSchema(in, []string{"size", "colour"})
	var me *MalformedRowError
	if !errors.As(err, &me) {
		t.Fatalf("expected MalformedRowError, got %v", err)
	}
	if me.ID != "3" || me.Position != 2 || me.Got != 1 || me.Want != 2 {
		t.Fatalf("unexpected error fields %+v", me)
	}
}

func TestBuildSchemaVocabulary(t *testing.T) {
	test := []data.Row{{ID: "9", Label: "unseen", Features: []string{"huge", "red"}}}
	s, err := BuildSchema(rows(), []string{"size", "colour"}, WithVocabulary(test))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Feature(0).Has("huge") {
		t.Fatal("vocabulary value not added")
	}
	if s.HasLabel("unseen") {
		t.Fatal("vocabulary rows must not add labels")
	}
	if s.Feature(1).Len() != 2 {
		t.Fatalf("colour values = %v", s.Feature(1).Values())
	}
}

func TestSchemaAccessorsCopy(t *testing.T) {
	s, err := BuildSchema(rows(), []string{"size", "colour"})
	if err != nil {
		t.Fatal(err)
	}
	labels := s.Labels()
	labels[0] = "mutated"
	vals := s.Feature(0).Values()
	vals[0] = "mutated"
	if s.Labels()[0] != "yes" || s.Feature(0).Values()[0] != "small" {
		t.Fatal("schema mutated through accessor")
	}
}

type upper struct{ fitted int }

func (u *upper) Fit(rows []data.Row) { u.fitted = len(rows) }

func (u *upper) Transform(rows []data.Row) []data.Row {
	out := make([]data.Row, len(rows))
	for i, r := range rows {
		f := make([]string, len(r.Features))
		for j, v := range r.Features {
			f[j] = strings.ToUpper(v)
		}
		out[i] = data.Row{ID: r.ID, Label: r.Label, Features: f}
	}
	return out
}

func TestPipeline(t *testing.T) {
	step := &upper{}
	p := NewPipeline(step)
	in := rows()
	out := p.Fit(in)
	if step.fitted != len(in) {
		t.Fatalf("fitted on %d rows", step.fitted)
	}
	if out[0].Features[0] != "SMALL" || in[0].Features[0] != "small" {
		t.Fatalf("unexpected transform %v / %v", out[0], in[0])
	}
	if got := p.Transform(in[:1]); got[0].Features[1] != "RED" {
		t.Fatalf("Transform = %v", got)
	}
	if p.Len() != 1 {
		t.Fatalf("Len = %d", p.Len())
	}
}
