package dataprep

import (
	"strings"
	"testing"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/pipeline"
)

var _ pipeline.Transformer = (*ModeImputer)(nil)

func TestMode(t *testing.T) {
	missing := map[string]bool{"?": true}
	tests := []struct {
		col  []string
		want string
		ok   bool
	}{
		{[]string{"a", "b", "b", "?", "?", "?"}, "b", true},
		{[]string{"a", "b"}, "a", true},
		{[]string{"?", "?"}, "", false},
		{nil, "", false},
	}
	for _, tt := range tests {
		got, ok := Mode(tt.col, missing)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Mode(%v) = %q, %v; want %q, %v", tt.col, got, ok, tt.want, tt.ok)
		}
	}
}

func TestImputeHelpers(t *testing.T) {
	missing := map[string]bool{"": true}
	col := ImputeMode([]string{"x", "", "x", "y"}, missing)
	if strings.Join(col, ",") != "x,x,x,y" {
		t.Fatalf("ImputeMode = %v", col)
	}
	col = ImputeMode([]string{"", ""}, missing)
	if strings.Join(col, ",") != "," {
		t.Fatalf("all-missing column changed: %v", col)
	}
	col = ImputeConstant([]string{"", "z"}, "Unknown", missing)
	if strings.Join(col, ",") != "Unknown,z" {
		t.Fatalf("ImputeConstant = %v", col)
	}
}

func TestModeImputer(t *testing.T) {
	train := []data.Row{
		{ID: "1", Label: "a", Features: []string{"yes", "?"}},
		{ID: "2", Label: "a", Features: []string{"no", "?"}},
		{ID: "3", Label: "b", Features: []string{"yes", "NA"}},
		{ID: "4", Label: "b", Features: []string{"?", "?"}},
	}
	imp := NewModeImputer()
	imp.Fit(train)
	if got := strings.Join(imp.Modes(), ","); got != "yes,Unknown" {
		t.Fatalf("modes = %q", got)
	}
	out := imp.Transform(train)
	if got := strings.Join(out[3].Features, ","); got != "yes,Unknown" {
		t.Fatalf("row 4 = %q", got)
	}
	if train[3].Features[0] != "?" {
		t.Fatal("Transform modified its input")
	}
	test := imp.Transform([]data.Row{{ID: "9", Label: "a", Features: []string{"", "x", "extra"}}})
	if got := strings.Join(test[0].Features, ","); got != "yes,x,extra" {
		t.Fatalf("test row = %q", got)
	}
}
