package data

// Row is a single labelled instance: an identifier, a class label and the
// ordered categorical feature values.
type Row struct {
	ID       string
	Label    string
	Features []string
}

// NewRow copies features so the returned row does not alias the caller's slice.
func NewRow(id, label string, features []string) Row {
	f := make([]string, len(features))
	copy(f, features)
	return Row{ID: id, Label: label, Features: f}
}

// Dataset is an ordered collection of rows plus the feature column names
// taken from the file header (identifier and label columns excluded).
type Dataset struct {
	FeatureNames []string
	Rows         []Row
}

// Labels returns the label of every row, in row order.
func (d *Dataset) Labels() []string {
	out := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r.Label
	}
	return out
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }
