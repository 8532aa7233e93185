package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/model"
)

// Summary is the machine-readable form of an evaluation.
type Summary struct {
	Smoothing  string               `json:"smoothing" msgpack:"smoothing"`
	Evaluation *model.Evaluation    `json:"evaluation" msgpack:"evaluation"`
	Classes    []model.ClassMetrics `json:"classes" msgpack:"classes"`
	Confusion  [][]int              `json:"confusion" msgpack:"confusion"`
}

// NewSummary derives per-class metrics and the confusion matrix from ev.
func NewSummary(ev *model.Evaluation, s model.Smoothing) Summary {
	cm := ev.Confusion()
	return Summary{
		Smoothing:  s.String(),
		Evaluation: ev,
		Classes:    cm.PerClass(),
		Confusion:  cm.Counts,
	}
}

// Format is an export encoding.
type Format int

const (
	JSON Format = iota
	Msgpack
)

// FormatFor picks the encoding from the file extension; anything other than
// .msgpack or .mp is written as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return Msgpack
	default:
		return JSON
	}
}

// Encode writes s to w in the given format.
func Encode(w io.Writer, s Summary, f Format) error {
	switch f {
	case Msgpack:
		return msgpack.NewEncoder(w).Encode(s)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return fmt.Errorf("report: unknown format %d", f)
}

// Decode reads a Summary previously written by Encode.
func Decode(r io.Reader, f Format) (Summary, error) {
	var s Summary
	var err error
	switch f {
	case Msgpack:
		err = msgpack.NewDecoder(r).Decode(&s)
	case JSON:
		err = json.NewDecoder(r).Decode(&s)
	default:
		err = fmt.Errorf("report: unknown format %d", f)
	}
	return s, err
}

// WriteFile encodes s to path using FormatFor(path).
func WriteFile(path string, s Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, s, FormatFor(path)); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// ReadFile decodes a Summary written by WriteFile.
func ReadFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()
	s, err := Decode(f, FormatFor(path))
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
