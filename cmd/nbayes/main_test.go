package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/report"
)

const trainCSV = `id,label,size
1,yes,small
2,yes,large
3,no,small
4,no,small
`

const testCSV = `id,label,size
t1,no,small
t2,yes,large
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("nbayes %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "nbayes.toml", "")
	train := writeFile(t, dir, "train.csv", trainCSV)
	test := writeFile(t, dir, "test.csv", testCSV)
	out := filepath.Join(dir, "report.msgpack")

	stdout := execute(t, "run", "--config", cfg, "--color", "off",
		"--train", train, "--test", test, "--smoothing", "mle", "--report", out)

	if !strings.Contains(stdout, "Accuracy: 100.00% (2/2)") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
	summary, err := report.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if summary.Smoothing != "mle" || summary.Evaluation.Correct != 2 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "nbayes.toml", "")
	input := writeFile(t, dir, "all.csv", trainCSV)
	trainOut := filepath.Join(dir, "train.csv")
	testOut := filepath.Join(dir, "test.csv")

	stdout := execute(t, "split", "--config", cfg, "--input", input,
		"--train-out", trainOut, "--test-out", testOut, "--ratio", "0.5", "--seed", "3")
	if !strings.Contains(stdout, "wrote 2 training rows") {
		t.Fatalf("unexpected output: %s", stdout)
	}
	tr, err := data.LoadCSV(trainOut)
	if err != nil {
		t.Fatal(err)
	}
	te, err := data.LoadCSV(testOut)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 2 || te.Len() != 2 || te.FeatureNames[0] != "size" {
		t.Fatalf("split files: %d/%d rows, names %v", tr.Len(), te.Len(), te.FeatureNames)
	}
}

func TestPredictCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "nbayes.toml", "[data]\ntrain = \"train.csv\"\n")
	writeFile(t, dir, "train.csv", trainCSV)
	input := writeFile(t, dir, "input.csv", "id,label,size\nu1,,small\nu2,?,medium\n")

	stdout := execute(t, "predict", "--config", cfg, "--color", "off", "--input", input)
	for _, want := range []string{"Instance u1", "Instance u2"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("output missing %q:\n%s", want, stdout)
		}
	}
}
