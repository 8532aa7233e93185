package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader is returned when the input has no header line.
var ErrNoHeader = errors.New("data: missing header line")

// ShortRecordError reports a line that cannot be split into id and label.
type ShortRecordError struct {
	Line   int
	Fields int
}

func (e *ShortRecordError) Error() string {
	return fmt.Sprintf("data: line %d: need at least id and label columns, got %d field(s)", e.Line, e.Fields)
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	// Width is checked against the schema later so the offending row id can be reported.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

func readHeader(reader *csv.Reader) ([]string, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("data: reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, &ShortRecordError{Line: 1, Fields: len(header)}
	}
	names := make([]string, 0, len(header)-2)
	for _, h := range header[2:] {
		names = append(names, strings.TrimSpace(h))
	}
	return names, nil
}

// splitRecord turns a raw record into a Row: column 0 is the id, column 1 the
// label, the rest are feature values.
func splitRecord(reader *csv.Reader, rec []string) (Row, error) {
	if len(rec) < 2 {
		line, _ := reader.FieldPos(0)
		return Row{}, &ShortRecordError{Line: line, Fields: len(rec)}
	}
	features := make([]string, len(rec)-2)
	for i, v := range rec[2:] {
		features[i] = strings.TrimSpace(v)
	}
	return Row{
		ID:       strings.TrimSpace(rec[0]),
		Label:    strings.TrimSpace(rec[1]),
		Features: features,
	}, nil
}

// ReadCSV reads a header line followed by one row per instance.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := newReader(r)
	names, err := readHeader(reader)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{FeatureNames: names}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
		row, err := splitRecord(reader, rec)
		if err != nil {
			return nil, err
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := ReadCSV(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Record is one streamed row or the error that stopped the stream.
type Record struct {
	Row Row
	Err error
}

// StreamCSV reads the header synchronously and then streams rows through out.
// out is closed when the file is exhausted, on the first read error (sent as a
// Record with Err set) or when the returned done channel is closed.
func StreamCSV(path string, out chan<- Record) (featureNames []string, done chan struct{}, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	reader := newReader(bufio.NewReader(file))
	featureNames, err = readHeader(reader)
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	done = make(chan struct{})

	go func() {
		defer file.Close()
		defer close(out)

		send := func(r Record) bool {
			select {
			case <-done:
				return false
			case out <- r:
				return true
			}
		}
		for {
			select {
			case <-done:
				return
			default:
			}
			rec, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				send(Record{Err: fmt.Errorf("%s: %w", path, err)})
				return
			}
			row, err := splitRecord(reader, rec)
			if err != nil {
				send(Record{Err: fmt.Errorf("%s: %w", path, err)})
				return
			}
			if !send(Record{Row: row}) {
				return
			}
		}
	}()
	return featureNames, done, nil
}

// WriteCSV writes ds in the same layout ReadCSV accepts.
func WriteCSV(w io.Writer, ds *Dataset) error {
	writer := csv.NewWriter(w)
	header := append([]string{"id", "label"}, ds.FeatureNames...)
	if err := writer.Write(header); err != nil {
		return err
	}
	rec := make([]string, 0, len(header))
	for _, r := range ds.Rows {
		rec = append(rec[:0], r.ID, r.Label)
		rec = append(rec, r.Features...)
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV writes ds to path, creating or truncating it.
func SaveCSV(path string, ds *Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, ds); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}
