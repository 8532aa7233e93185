package dataprep

import "github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"

// DefaultMissing lists the markers treated as a missing value.
var DefaultMissing = []string{"", "?", "NA", "NaN"}

// ---------- Simple Imputation Methods ----------

// Mode returns the most frequent non-missing value in col. Ties go to the value
// seen first. ok is false when every value is missing.
func Mode(col []string, missing map[string]bool) (mode string, ok bool) {
	counts := map[string]int{}
	best := 0
	for _, v := range col {
		if missing[v] {
			continue
		}
		counts[v]++
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}
	return mode, best > 0
}

// ImputeMode replaces missing values in col with the column mode.
func ImputeMode(col []string, missing map[string]bool) []string {
	mode, ok := Mode(col, missing)
	if !ok {
		return col
	}
	return ImputeConstant(col, mode, missing)
}

// ImputeConstant replaces missing values with a fixed constant.
func ImputeConstant(col []string, constant string, missing map[string]bool) []string {
	for i, v := range col {
		if missing[v] {
			col[i] = constant
		}
	}
	return col
}

// ---------- Row transformer ----------

// ModeImputer fills missing categorical values with the per-column mode learned
// from the rows passed to Fit. Columns that are entirely missing at fit time
// are filled with Fallback.
type ModeImputer struct {
	Missing  []string
	Fallback string

	modes []string
}

// NewModeImputer returns an imputer using DefaultMissing and "Unknown" as fallback.
func NewModeImputer() *ModeImputer {
	return &ModeImputer{Missing: DefaultMissing, Fallback: "Unknown"}
}

func (m *ModeImputer) missingSet() map[string]bool {
	set := make(map[string]bool, len(m.Missing))
	for _, v := range m.Missing {
		set[v] = true
	}
	return set
}

// Fit learns one replacement value per feature column.
func (m *ModeImputer) Fit(rows []data.Row) {
	m.modes = nil
	if len(rows) == 0 {
		return
	}
	missing := m.missingSet()
	width := len(rows[0].Features)
	m.modes = make([]string, width)
	col := make([]string, 0, len(rows))
	for c := 0; c < width; c++ {
		col = col[:0]
		for _, r := range rows {
			if c < len(r.Features) {
				col = append(col, r.Features[c])
			}
		}
		if mode, ok := Mode(col, missing); ok {
			m.modes[c] = mode
		} else {
			m.modes[c] = m.Fallback
		}
	}
}

// Transform returns copies of rows with missing values replaced. Columns beyond
// the fitted width are left untouched so the schema can still reject the row.
func (m *ModeImputer) Transform(rows []data.Row) []data.Row {
	missing := m.missingSet()
	out := make([]data.Row, len(rows))
	for i, r := range rows {
		f := make([]string, len(r.Features))
		copy(f, r.Features)
		for c, v := range f {
			if c < len(m.modes) && missing[v] {
				f[c] = m.modes[c]
			}
		}
		out[i] = data.Row{ID: r.ID, Label: r.Label, Features: f}
	}
	return out
}

// Modes returns the fitted replacement values, one per column.
func (m *ModeImputer) Modes() []string {
	out := make([]string, len(m.modes))
	copy(out, m.modes)
	return out
}
