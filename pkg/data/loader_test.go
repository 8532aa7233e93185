package data

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `id,label,age,size
1, yes ,young,small
2,no,old,large
`

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got := strings.Join(ds.FeatureNames, ","); got != "age,size" {
		t.Fatalf("feature names = %q", got)
	}
	if ds.Len() != 2 {
		t.Fatalf("rows = %d, want 2", ds.Len())
	}
	first := ds.Rows[0]
	if first.ID != "1" || first.Label != "yes" || strings.Join(first.Features, ",") != "young,small" {
		t.Fatalf("unexpected first row %+v", first)
	}
	if got := strings.Join(ds.Labels(), ","); got != "yes,no" {
		t.Fatalf("labels = %q", got)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"empty", "", func(err error) bool { return errors.Is(err, ErrNoHeader) }},
		{"short header", "id\n", func(err error) bool {
			var se *ShortRecordError
			return errors.As(err, &se) && se.Line == 1
		}},
		{"short row", "id,label,a\n1,yes,x\n2\n", func(err error) bool {
			var se *ShortRecordError
			return errors.As(err, &se) && se.Line == 3 && se.Fields == 1
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestReadCSVKeepsRaggedRows(t *testing.T) {
	// Width mismatches are reported by the schema, not the reader.
	ds, err := ReadCSV(strings.NewReader("id,label,a,b\n1,yes,x\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(ds.Rows[0].Features) != 1 {
		t.Fatalf("features = %v", ds.Rows[0].Features)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := SaveCSV(path, ds); err != nil {
		t.Fatalf("SaveCSV: %v", err)
	}
	back, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	var a, b bytes.Buffer
	if err := WriteCSV(&a, ds); err != nil {
		t.Fatal(err)
	}
	if err := WriteCSV(&b, back); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatalf("round trip mismatch:\n%s\n%s", a.String(), b.String())
	}
}

func TestStreamCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	out := make(chan Record)
	names, done, err := StreamCSV(path, out)
	if err != nil {
		t.Fatalf("StreamCSV: %v", err)
	}
	defer close(done)
	if len(names) != 2 {
		t.Fatalf("names = %v", names)
	}
	var ids []string
	for rec := range out {
		if rec.Err != nil {
			t.Fatalf("stream error: %v", rec.Err)
		}
		ids = append(ids, rec.Row.ID)
	}
	if strings.Join(ids, ",") != "1,2" {
		t.Fatalf("ids = %v", ids)
	}
}

func TestStreamCSVStopsEarly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	out := make(chan Record)
	_, done, err := StreamCSV(path, out)
	if err != nil {
		t.Fatal(err)
	}
	<-out
	close(done)
	for range out {
	}
}
